// pkg/ai/gemini_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studyplan/pkg/planner/types"
)

type gemini struct {
	endpoint string
	key      string
	model    string
}

func NewGemini(endpoint, key, model string) Client {
	return &gemini{endpoint: endpoint, key: key, model: model}
}

func (c *gemini) GenerateTasks(form types.AssignmentForm, assignmentType, extraContext string) ([]types.TaskDraft, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{
				{"text": renderTaskPrompt(form, assignmentType, extraContext)},
			}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.7,
			"topK":            40,
			"topP":            0.95,
			"maxOutputTokens": 2048,
		},
	}

	b, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(c.endpoint, "/"), c.model, c.key)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generate request failed: %s", resp.Status)
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in generator response")
	}

	return ParseDrafts(out.Candidates[0].Content.Parts[0].Text)
}

// ParseDrafts extracts the {"tasks":[...]} payload from model output.
// Unparseable content degrades to the fixed fallback breakdown; a valid
// JSON object without a tasks array is a hard error.
func ParseDrafts(content string) ([]types.TaskDraft, error) {
	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first == -1 || last <= first {
		return FallbackDrafts(), nil
	}

	var payload struct {
		Tasks []types.TaskDraft `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(content[first:last+1]), &payload); err != nil {
		return FallbackDrafts(), nil
	}
	if payload.Tasks == nil {
		return nil, fmt.Errorf("generator response missing tasks array")
	}
	if len(payload.Tasks) == 0 {
		return nil, fmt.Errorf("generator returned an empty task list")
	}
	return payload.Tasks, nil
}

// FallbackDrafts is the generic four-step breakdown used when the model
// answers with prose instead of JSON.
func FallbackDrafts() []types.TaskDraft {
	return []types.TaskDraft{
		{
			Name:        "Research and Planning",
			Description: "• Research the topic thoroughly using reliable sources\n• Create an outline or plan for your work\n• Identify key points and arguments\n• Organize your thoughts and materials",
			Tip:         "Start with reliable sources and organize your thoughts before diving into the work",
		},
		{
			Name:        "Initial Draft/Development",
			Description: "• Create the first version of your work\n• Focus on getting ideas down without worrying about perfection\n• Follow your outline or plan\n• Don't edit while writing the first draft",
			Tip:         "Focus on getting your ideas down first, don't worry about perfection",
		},
		{
			Name:        "Review and Revision",
			Description: "• Review your work for content and structure\n• Check if arguments are clear and well-supported\n• Reorganize sections if needed\n• Get feedback from others if possible",
			Tip:         "Take a break before reviewing to see it with fresh eyes",
		},
		{
			Name:        "Final Polish",
			Description: "• Proofread for grammar, spelling, and formatting\n• Check all requirements are met\n• Ensure proper citation format\n• Prepare for submission",
			Tip:         "Check all requirements and formatting guidelines carefully",
		},
	}
}
