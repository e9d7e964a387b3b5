package formatter

import (
	"strings"
)

const (
	Brand   = "StudyAI"
	Tagline = "AI-Powered Learning Platform"
)

// NavSections are the top-level sections in navigation order.
var NavSections = []string{"Dashboard", "Documents", "Assessments", "Analytics"}

// SectionIntro is the heading and blurb shown above a section.
type SectionIntro struct {
	Title string
	Blurb string
}

var (
	DocumentsIntro = SectionIntro{
		Title: "Upload Your Study Materials",
		Blurb: "Upload PDFs, documents, and notes. Our AI will analyze and process them to create personalized assessments and study plans.",
	}
	AssessmentsIntro = SectionIntro{
		Title: "AI-Generated Assessments",
		Blurb: "Automatically create personalized quizzes, tests, and practice problems based on your uploaded study materials.",
	}
	AnalyticsIntro = SectionIntro{
		Title: "Track Your Progress",
		Blurb: "Comprehensive analytics to monitor your learning journey, identify strengths, and optimize your study approach with AI insights.",
	}
	RecommendationsIntro = SectionIntro{
		Title: "AI Study Recommendations",
		Blurb: "Personalized study suggestions based on your performance, learning patterns, and knowledge gaps identified by our AI system.",
	}
)

// FormatIntro renders a section heading followed by its dimmed blurb.
func FormatIntro(in SectionIntro) string {
	return Header(in.Title) + "\n" + Dim(in.Blurb) + "\n"
}

// FormatNav renders the brand and section links, highlighting active.
func FormatNav(active string) string {
	parts := make([]string, 0, len(NavSections))
	for _, s := range NavSections {
		if s == active {
			parts = append(parts, StyleHeader.Render(s))
			continue
		}
		parts = append(parts, Dim(s))
	}
	return StylePurple.Bold(true).Render(Brand) + "  " + strings.Join(parts, Dim(" · "))
}

// FormatHero renders the landing hero block.
func FormatHero() string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("✦ " + Tagline))
	b.WriteString("\n\n")
	b.WriteString(Bold("Transform Your"))
	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Study Experience"))
	b.WriteString("\n\n")
	b.WriteString(Dim("Upload documents, generate assessments, track progress, and receive\nAI-driven recommendations to optimize your learning journey."))
	b.WriteString("\n\n")
	features := []string{
		StyleBlue.Render("⇪ Upload Documents"),
		StylePurple.Render("◆ AI Assessments"),
		StyleGreen.Render("✦ Smart Analytics"),
	}
	b.WriteString(strings.Join(features, "    "))
	b.WriteString("\n")
	return b.String()
}
