package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectAssignmentType(t *testing.T) {
	cases := []struct {
		title, topic, want string
	}{
		{"Build a REST API", "backend in Go", "coding"},
		{"C++ assignment", "pointers and memory", "coding"},
		{"Final pitch", "startup demo day", "presentation"},
		{"Chemistry lab", "titration experiment", "lab"},
		{"Problem set 4", "solve the differential equation", "math"},
		{"Poster", "wireframe and mockup for the landing page", "design"},
		{"Literature review", "climate adaptation research", "research"},
		{"Quarterly findings", "project documentation", "report"},
		{"Reflections on Hamlet", "Shakespeare's tragedies", "essay"},
		{"", "", "essay"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectAssignmentType(tc.title, tc.topic),
			"%q / %q", tc.title, tc.topic)
	}
}

func TestDetectAssignmentTypeOrder(t *testing.T) {
	// "coding" outranks "design" when both keyword sets match
	assert.Equal(t, "coding", DetectAssignmentType("Design a website", ""))
	// matching is case-insensitive
	assert.Equal(t, "presentation", DetectAssignmentType("FINAL PRESENTATION", ""))
}
