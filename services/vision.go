package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ecocycle/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const visionModel = "gemini-1.5-flash"

var visionClient *genai.Client

// InitVisionService creates the Gemini client used for object detection.
func InitVisionService(apiKey string) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return fmt.Errorf("failed to create vision client: %w", err)
	}
	visionClient = client
	return nil
}

const detectionPrompt = `Identify the single most prominent everyday object in this photo.
Respond with JSON only, no prose:
{"objectClass": "<lowercase common name, e.g. bottle, laptop, cell phone>",
 "confidence": <0.0-1.0>,
 "boundingBox": {"x": <0-1>, "y": <0-1>, "width": <0-1>, "height": <0-1>}}`

// ClassifyImage sends the photo to the vision model and parses one labeled
// detection out of its reply.
func ClassifyImage(ctx context.Context, imageData []byte, mimeType string) (*models.Detection, error) {
	if visionClient == nil {
		return nil, errors.New("vision client not initialized")
	}

	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" || format == mimeType {
		format = "jpeg"
	}

	model := visionClient.GenerativeModel(visionModel)
	resp, err := model.GenerateContent(ctx, genai.ImageData(format, imageData), genai.Text(detectionPrompt))
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %w", err)
	}

	text := extractResponseText(resp)
	if text == "" {
		return nil, errors.New("empty vision response")
	}

	var detection models.Detection
	if err := json.Unmarshal([]byte(cleanModelOutput(text)), &detection); err != nil {
		return nil, fmt.Errorf("parsing vision response: %w", err)
	}
	if detection.ObjectClass == "" {
		return nil, errors.New("vision response missing object class")
	}
	detection.ObjectClass = strings.ToLower(strings.TrimSpace(detection.ObjectClass))
	if detection.Confidence < 0 {
		detection.Confidence = 0
	}
	if detection.Confidence > 1 {
		detection.Confidence = 1
	}
	return &detection, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// cleanModelOutput strips the markdown fences models like to wrap JSON in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
