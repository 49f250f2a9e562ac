package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/finsight/finsight/pkg/profile"
	"github.com/finsight/finsight/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Client talks to the external prediction model service.
type Client interface {
	Predict(ctx context.Context, features profile.FeatureRecordDTO) (Result, error)
	FetchUserData(ctx context.Context) (Bundle, error) // GET {base}/data
	Ping(ctx context.Context) error                    // GET {base}/health
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Predict sends the feature vector to the model service and returns its
// result untouched.
func (c *HTTPClient) Predict(ctx context.Context, features profile.FeatureRecordDTO) (Result, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return Result{}, fmt.Errorf("could not encode feature record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("prediction service returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return Result{}, err
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return Result{}, err
	}

	return result, nil
}

// FetchUserData retrieves the current user's prediction history from the
// model service.
func (c *HTTPClient) FetchUserData(ctx context.Context) (Bundle, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to get current user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/data", nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return Bundle{}, err
	}
	req.Header.Set("X-User-Id", uid)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return Bundle{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("prediction service returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return Bundle{}, err
	}

	var dto BundleDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return Bundle{}, err
	}

	return BundleFromDTO(dto)
}

// Ping checks whether the model service is reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("prediction service returned non-OK status: %d", resp.StatusCode)
	}
	return nil
}
