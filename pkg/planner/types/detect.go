package types

import (
	"regexp"
	"strings"
)

// Keyword tables for assignment-type detection. Checked in order; the
// first match wins, written assignments fall through to "essay".
var detectors = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"coding", regexp.MustCompile(`\b(code|coding|program|programming|software|app|website|algorithm|debug|implement|function|class|api|database|frontend|backend|fullstack|javascript|python|java|c\+\+|react|node|sql|html|css)\b`)},
	{"presentation", regexp.MustCompile(`\b(presentation|present|slide|pitch|demo|showcase|speak|talk|oral)\b`)},
	{"lab", regexp.MustCompile(`\b(lab|laboratory|experiment|test|analysis|data|results|hypothesis|method|procedure|observation)\b`)},
	{"math", regexp.MustCompile(`\b(math|mathematics|calculate|solve|equation|formula|proof|theorem|statistics|calculus|algebra)\b`)},
	{"design", regexp.MustCompile(`\b(design|create|build|prototype|mockup|wireframe|ui|ux|graphic|visual|art|creative)\b`)},
	{"research", regexp.MustCompile(`\b(research|study|investigate|analyze|survey|interview|data collection|literature review)\b`)},
	{"report", regexp.MustCompile(`\b(report|summary|findings|documentation|technical writing|case study)\b`)},
}

// DetectAssignmentType classifies an assignment from its title and topic.
func DetectAssignmentType(title, topic string) string {
	combined := strings.ToLower(title + " " + topic)
	for _, d := range detectors {
		if d.re.MatchString(combined) {
			return d.kind
		}
	}
	return "essay"
}
