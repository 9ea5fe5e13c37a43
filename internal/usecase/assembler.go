package usecase

import (
	"fmt"
	"strings"

	"portfolio-gateway/internal/domain/entity"
)

// systemInstructions always lead the assembled prompt so provider-side
// priority handling favors them over anything in the user message.
const systemInstructions = `You are a portfolio assistant answering questions about the person described below.

CRITICAL RULES:
- Only answer questions about this person using the resume data below
- If the question is unrelated, politely decline and redirect
- Never invent or hallucinate information not in the resume
- Keep responses concise (2-3 sentences max, except for detailed project questions)
- Be professional but friendly`

// PromptAssembler renders the immutable ProfileContext into a text block once
// at construction, then concatenates instructions + profile + message per
// request. Assemble is a pure function of the message.
type PromptAssembler struct {
	profileBlock string
}

func NewPromptAssembler(profile *entity.ProfileContext) *PromptAssembler {
	return &PromptAssembler{profileBlock: renderProfile(profile)}
}

func (a *PromptAssembler) Assemble(message string) string {
	var b strings.Builder
	b.WriteString(systemInstructions)
	b.WriteString("\n\nRESUME DATA:\n")
	b.WriteString(a.profileBlock)
	b.WriteString("\n\nUser Question:\n")
	b.WriteString(message)
	return b.String()
}

func renderProfile(p *entity.ProfileContext) string {
	var b strings.Builder

	relocate := "No"
	if p.Personal.OpenToRelocate {
		relocate = "Yes"
	}
	fmt.Fprintf(&b, "PROFESSIONAL PROFILE:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Personal.Name)
	fmt.Fprintf(&b, "Role: %s\n", p.Personal.Role)
	fmt.Fprintf(&b, "Location: %s\n", p.Personal.Location)
	fmt.Fprintf(&b, "Email: %s\n", p.Personal.Email)
	fmt.Fprintf(&b, "Phone: %s\n", p.Personal.Phone)
	fmt.Fprintf(&b, "Portfolio: %s\n", p.Personal.Portfolio)
	fmt.Fprintf(&b, "GitHub: %s\n", p.Personal.GitHub)
	fmt.Fprintf(&b, "LinkedIn: %s\n", p.Personal.LinkedIn)
	fmt.Fprintf(&b, "Open to Relocate: %s\n", relocate)

	fmt.Fprintf(&b, "\nPROFESSIONAL SUMMARY:\n%s\n", p.Summary)

	b.WriteString("\nWORK EXPERIENCE:\n")
	for i, exp := range p.Experience {
		if i > 0 {
			b.WriteString("---\n")
		}
		fmt.Fprintf(&b, "%s at %s\n", exp.Role, exp.Company)
		fmt.Fprintf(&b, "Duration: %s | Location: %s\n", exp.Duration, exp.Location)
		for _, h := range exp.Highlights {
			fmt.Fprintf(&b, "• %s\n", h)
		}
	}

	b.WriteString("\nPROJECTS:\n")
	for i, proj := range p.Projects {
		if i > 0 {
			b.WriteString("---\n")
		}
		fmt.Fprintf(&b, "PROJECT: %s\n", proj.Name)
		fmt.Fprintf(&b, "Description: %s\n", proj.Description)
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(proj.Tech, ", "))
		b.WriteString("Highlights:\n")
		for _, h := range proj.Highlights {
			fmt.Fprintf(&b, "• %s\n", h)
		}
	}

	b.WriteString("\nTECHNICAL SKILLS:\n")
	fmt.Fprintf(&b, "Programming Languages & Frameworks: %s\n", strings.Join(p.Skills.Programming, ", "))
	fmt.Fprintf(&b, "Tools & Platforms: %s\n", strings.Join(p.Skills.Tools, ", "))

	b.WriteString("\nEDUCATION:\n")
	for _, edu := range p.Education {
		fmt.Fprintf(&b, "%s\n", edu.Degree)
		fmt.Fprintf(&b, "Institution: %s\n", edu.Institution)
		fmt.Fprintf(&b, "Graduation: %s | GPA: %s\n", edu.Year, edu.GPA)
		if edu.Location != "" {
			fmt.Fprintf(&b, "Location: %s\n", edu.Location)
		}
	}

	fmt.Fprintf(&b, "\nCOURSEWORK:\n%s\n", strings.Join(p.Coursework, ", "))

	b.WriteString("\nIMPORTANT RULES:\n")
	for _, rule := range p.Rules {
		fmt.Fprintf(&b, "• %s\n", rule)
	}

	return b.String()
}
