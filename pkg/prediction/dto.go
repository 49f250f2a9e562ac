package prediction

import (
	"fmt"
	"time"

	"github.com/finsight/finsight/pkg/profile"
)

type RecordDTO struct {
	ID        string                   `json:"id"`
	Timestamp string                   `json:"timestamp"`
	Input     profile.FeatureRecordDTO `json:"input_data"`
	Output    Result                   `json:"output_data"`
}

type BundleDTO struct {
	TotalPredictions int         `json:"total_predictions"`
	Predictions      []RecordDTO `json:"predictions"`
}

func recordToDTO(r Record) RecordDTO {
	return RecordDTO{
		ID:        r.ID,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Input:     profile.FeatureRecordToDTO(r.Input),
		Output:    r.Output,
	}
}

func recordFromDTO(dto RecordDTO) (Record, error) {
	timestamp, err := time.Parse(time.RFC3339, dto.Timestamp)
	if err != nil {
		return Record{}, fmt.Errorf("could not parse prediction timestamp %q: %w", dto.Timestamp, err)
	}
	return Record{
		ID:        dto.ID,
		Timestamp: timestamp,
		Input:     profile.DTOToFeatureRecord(dto.Input),
		Output:    dto.Output,
	}, nil
}

func BundleToDTO(b Bundle) BundleDTO {
	dtos := make([]RecordDTO, 0, len(b.Records))
	for _, r := range b.Records {
		dtos = append(dtos, recordToDTO(r))
	}
	return BundleDTO{
		TotalPredictions: len(dtos),
		Predictions:      dtos,
	}
}

func BundleFromDTO(dto BundleDTO) (Bundle, error) {
	records := make([]Record, 0, len(dto.Predictions))
	for _, r := range dto.Predictions {
		record, err := recordFromDTO(r)
		if err != nil {
			return Bundle{}, err
		}
		records = append(records, record)
	}
	return Bundle{Records: records}, nil
}
