package database

import (
	"encoding/json"
	"strings"

	"github.com/appspec/harness/models"
)

// SaveRun - stores a run record
func SaveRun(run *models.RunRecord) error {
	jsonData, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return Insert(run.ID, string(jsonData), RUNS_TABLE_NAME)
}

// GetRun - fetches one run record by id
func GetRun(id string) (models.RunRecord, error) {
	var run models.RunRecord
	record, err := FetchRecord(RUNS_TABLE_NAME, id)
	if err != nil {
		return run, err
	}
	err = json.Unmarshal([]byte(record), &run)
	return run, err
}

// GetRuns - fetches all run records
func GetRuns() ([]models.RunRecord, error) {
	records, err := FetchRecords(RUNS_TABLE_NAME)
	if err != nil {
		if IsEmptyRecord(err) {
			return []models.RunRecord{}, nil
		}
		return nil, err
	}
	runs := make([]models.RunRecord, 0, len(records))
	for key := range records {
		var run models.RunRecord
		if err := json.Unmarshal([]byte(records[key]), &run); err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun - removes a run record and its rendered configs
func DeleteRun(id string) error {
	configs, err := FetchRecords(RENDERED_CONFIGS_TABLE_NAME)
	if err == nil {
		for key := range configs {
			if strings.HasPrefix(key, id+"/") {
				_ = DeleteRecord(RENDERED_CONFIGS_TABLE_NAME, key)
			}
		}
	}
	return DeleteRecord(RUNS_TABLE_NAME, id)
}

// SaveRenderedConfig - stores a rendered player config under <runid>/<player>
func SaveRenderedConfig(runID, player, rendered string) error {
	jsonData, err := json.Marshal(map[string]string{"config": rendered})
	if err != nil {
		return err
	}
	return Insert(runID+"/"+player, string(jsonData), RENDERED_CONFIGS_TABLE_NAME)
}

// IsEmptyRecord - checks for lack of record error
func IsEmptyRecord(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), NO_RECORD) || strings.Contains(err.Error(), NO_RECORDS)
}
