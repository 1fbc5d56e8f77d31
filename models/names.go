package models

var logoString = retrieveLogo()

// RetrieveLogo - retrieves the ascii art logo for the harness
func RetrieveLogo() string {
	return logoString
}

func retrieveLogo() string {
	return `
 ______     ______   ______   ______     ______   ______     ______
/\  __ \   /\  == \ /\  == \ /\  ___\   /\  == \ /\  ___\   /\  ___\
\ \  __ \  \ \  _-/ \ \  _-/ \ \___  \  \ \  _-/ \ \  __\   \ \ \____
 \ \_\ \_\  \ \_\    \ \_\    \/\_____\  \ \_\    \ \_____\  \ \_____\
  \/_/\/_/   \/_/     \/_/     \/_____/   \/_/     \/_____/   \/_____/
                                            scenario harness
`
}
