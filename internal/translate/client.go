package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// Translator is the external translation collaborator. The HTTP client below
// implements it against the Google Translation v2 API; tests swap in fakes.
type Translator interface {
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, target string) (string, error)
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetTestTransport points the client at a test server instead of the real API.
func (c *Client) SetTestTransport(baseURL string) {
	c.baseURL = baseURL
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Detect returns the language code of the given text.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"q": text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/detect?key=%s", c.baseURL, c.apiKey)
	respBody, err := c.post(ctx, url, body)
	if err != nil {
		return "", err
	}

	var apiResp detectResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(apiResp.Data.Detections) == 0 || len(apiResp.Data.Detections[0]) == 0 {
		return "", fmt.Errorf("no detection returned")
	}
	return apiResp.Data.Detections[0][0].Language, nil
}

// Translate returns the text translated to the target language.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"q":      text,
		"target": target,
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey)
	respBody, err := c.post(ctx, url, body)
	if err != nil {
		return "", err
	}

	var apiResp translateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(apiResp.Data.Translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return apiResp.Data.Translations[0].TranslatedText, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
