package jobs

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	QueueDefault = "default"

	TaskDashboardWarm     = "dashboard:warm"
	TaskAssetWarrantyScan = "assets:warranty_scan"
	defaultWarrantyWindow = 30
)

// WarrantyScanPayload selects how far ahead the scan looks.
type WarrantyScanPayload struct {
	Days int `json:"days"`
}

func NewDashboardWarmTask() *asynq.Task {
	return asynq.NewTask(TaskDashboardWarm, nil)
}

func NewWarrantyScanTask(days int) (*asynq.Task, error) {
	data, err := json.Marshal(WarrantyScanPayload{Days: days})
	if err != nil {
		return nil, fmt.Errorf("failed to encode warranty scan payload: %w", err)
	}
	return asynq.NewTask(TaskAssetWarrantyScan, data), nil
}
