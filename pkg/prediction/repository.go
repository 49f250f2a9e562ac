package prediction

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/finsight/finsight/pkg/profile"
	log "github.com/sirupsen/logrus"
)

var ErrRecordNotFound = errors.New("prediction not found")

type Repository interface {
	StorePrediction(ctx context.Context, userUid string, record Record) error
	GetUserPredictions(ctx context.Context, userUid string) ([]Record, error)
	GetLatestPrediction(ctx context.Context, userUid string) (Record, error)
	DeletePrediction(ctx context.Context, userUid string, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// StorePrediction persists a record. The feature vector and the model result
// are stored as JSON documents so the schema does not have to track the
// model's field set.
func (r *RepositoryImpl) StorePrediction(ctx context.Context, userUid string, record Record) error {
	inputData, err := json.Marshal(profile.FeatureRecordToDTO(record.Input))
	if err != nil {
		err := fmt.Errorf("could not encode input data: %w", err)
		log.Error(err)
		return err
	}
	outputData, err := json.Marshal(record.Output)
	if err != nil {
		err := fmt.Errorf("could not encode output data: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO predictions (id, user_uid, timestamp, input_data, output_data) VALUES ($1, $2, $3, $4, $5)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		record.ID,
		userUid,
		record.Timestamp.UTC().Format(time.RFC3339),
		string(inputData),
		string(outputData),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetUserPredictions(ctx context.Context, userUid string) ([]Record, error) {
	query := `SELECT id, timestamp, input_data, output_data FROM predictions WHERE user_uid = $1 ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, userUid)
	if err != nil {
		err := fmt.Errorf("could not query predictions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			err := fmt.Errorf("could not scan prediction: %w", err)
			log.Error(err)
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return records, nil
}

func (r *RepositoryImpl) GetLatestPrediction(ctx context.Context, userUid string) (Record, error) {
	query := `SELECT id, timestamp, input_data, output_data FROM predictions WHERE user_uid = $1 ORDER BY timestamp DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userUid)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrRecordNotFound
		}
		err := fmt.Errorf("could not scan prediction: %w", err)
		log.Error(err)
		return Record{}, err
	}
	return record, nil
}

func (r *RepositoryImpl) DeletePrediction(ctx context.Context, userUid string, id string) (bool, error) {
	query := `DELETE FROM predictions WHERE user_uid = $1 AND id = $2`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, userUid, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		record     Record
		timestamp  string
		inputData  string
		outputData string
	)
	if err := row.Scan(&record.ID, &timestamp, &inputData, &outputData); err != nil {
		return Record{}, err
	}

	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return Record{}, fmt.Errorf("could not parse timestamp: %w", err)
	}
	record.Timestamp = parsed

	var input profile.FeatureRecordDTO
	if err := json.Unmarshal([]byte(inputData), &input); err != nil {
		return Record{}, fmt.Errorf("could not decode input data: %w", err)
	}
	record.Input = profile.DTOToFeatureRecord(input)

	if err := json.Unmarshal([]byte(outputData), &record.Output); err != nil {
		return Record{}, fmt.Errorf("could not decode output data: %w", err)
	}
	return record, nil
}
