// pkg/ai/prompt.go

package ai

import (
	"fmt"
	"strings"

	"studyplan/pkg/planner/types"
)

const basePrompt = "You are an expert academic and professional assistant specializing in breaking down complex assignments into manageable, actionable tasks."

var typeExpertise = map[string]string{
	"coding":       "You have extensive experience in software development, programming best practices, debugging, testing, and project management for coding assignments.",
	"presentation": "You excel at presentation planning, content organization, visual design, public speaking preparation, and audience engagement strategies.",
	"lab":          "You are skilled in laboratory procedures, experimental design, data collection, analysis methods, and scientific reporting.",
	"math":         "You have deep expertise in mathematical problem-solving, proof techniques, computational methods, and mathematical communication.",
	"design":       "You specialize in design thinking, creative processes, prototyping, user experience, and iterative design methodologies.",
	"research":     "You are experienced in research methodologies, literature reviews, data collection, analysis techniques, and academic writing.",
	"report":       "You excel at technical writing, data presentation, executive summaries, and professional documentation.",
	"essay":        "You are skilled in academic writing, argumentation, research integration, and essay structure.",
}

var typeContext = map[string]string{
	"coding":       "This is a programming/coding assignment.",
	"presentation": "This is a presentation assignment.",
	"lab":          "This is a laboratory/experimental assignment.",
	"math":         "This is a mathematics/problem-solving assignment.",
	"design":       "This is a design/creative assignment.",
	"research":     "This is a research assignment.",
	"report":       "This is a report/documentation assignment.",
	"essay":        "This is a written essay assignment.",
}

func renderTaskPrompt(form types.AssignmentForm, assignmentType, extraContext string) string {
	expertise, ok := typeExpertise[assignmentType]
	if !ok {
		expertise = typeExpertise["essay"]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n\n", basePrompt, expertise)
	sb.WriteString(`Create detailed, practical task breakdowns that students can follow step-by-step. Each task should be:
- Specific and actionable
- Appropriately scoped for the time available
- Logically sequenced
- Include helpful tips when requested

IMPORTANT: Format all task descriptions as bullet point lists using "•" for better readability. Each step should be on a new line starting with "•".

Always respond with valid JSON in this exact format:
{
  "tasks": [
    {
      "name": "Clear, actionable task name",
      "description": "• First step or action item\n• Second step or action item\n• Third step or action item\n• Additional steps as needed",
      "tip": "Helpful, specific advice for completing this task successfully"
    }
  ]
}

Ensure 4-8 tasks depending on assignment complexity. Make tasks realistic and achievable.

`)

	if ctx, ok := typeContext[assignmentType]; ok {
		sb.WriteString(ctx + " ")
	}
	sb.WriteString("Please create a detailed task breakdown for the following assignment:\n\n")
	fmt.Fprintf(&sb, "**Assignment Title:** %s\n\n", form.Title)
	fmt.Fprintf(&sb, "**Assignment Description:** %s\n\n", form.Topic)
	fmt.Fprintf(&sb, "**Due Date:** %s\n\n", form.DueDate)
	if form.Requirements != "" {
		fmt.Fprintf(&sb, "**Requirements:** %s\n\n", form.Requirements)
	}
	if form.Deliverables != "" {
		fmt.Fprintf(&sb, "**Deliverables:** %s\n\n", form.Deliverables)
	}
	if form.Resources != "" {
		fmt.Fprintf(&sb, "**Resources Available:** %s\n\n", form.Resources)
	}
	if extraContext != "" {
		fmt.Fprintf(&sb, "**Study Notes:**\n%s\n\n", extraContext)
	}
	if form.ShowTips {
		sb.WriteString("**Include Tips:** Yes - provide helpful tips for each task\n\n")
	} else {
		sb.WriteString("**Include Tips:** No\n\n")
	}
	sb.WriteString(`Please break this down into 4-8 specific, actionable tasks that will help the student complete this assignment successfully. Consider the assignment type and provide appropriate guidance for each step.

Each task should be realistic and achievable within the timeframe available. Focus on practical steps the student can take immediately.

REMEMBER: Format all descriptions as bullet point lists using "•" and "\n" for line breaks.`)

	return sb.String()
}
