package ai

import (
	_ "embed"
	"fmt"
	"strings"
)

// SystemPrompt is sent with every assessment request. Low temperature plus a
// strict-JSON instruction keeps the output parseable.
const SystemPrompt = "You are an expert ATS resume analyzer. Always respond with STRICT valid JSON only — no markdown, no explanation, no code fences."

var (
	//go:embed prompts/role.txt
	rolePrompt string
	//go:embed prompts/jd.txt
	jdPrompt string
)

// RolePrompt renders the role-mode user prompt.
func RolePrompt(resumeText, role string) string {
	return strings.TrimSpace(fmt.Sprintf(rolePrompt, role, resumeText))
}

// JDPrompt renders the job-description-mode user prompt.
func JDPrompt(resumeText, jobDescription string) string {
	return strings.TrimSpace(fmt.Sprintf(jdPrompt, jobDescription, resumeText))
}
