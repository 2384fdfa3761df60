package prompts

import (
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/domain"
)

// catalog is the fixed, ordered set of analysis options. Order matters: the
// first entry is the default selection and the selector lists them as-is.
var catalog = []domain.AnalysisOption{
	{
		Label:          "Describe",
		PromptTemplate: `You are a historian. Provide a comprehensive description of the historical artifact in the image. Include its physical appearance, materials, craftsmanship, and overall significance.`,
	},
	{
		Label:          "Identify & Classify",
		PromptTemplate: `You are an expert art historian. Identify and classify the artifact in the image. Specify its type, estimated era or period, materials used, cultural origin, and any distinguishing features that help with identification.`,
	},
	{
		Label:          "Historical Context",
		PromptTemplate: `You are a historian. Analyze the historical context of this artifact. Explain the time period it comes from, the historical events or culture it relates to, and how it would have been used or valued in its time.`,
	},
	{
		Label:          "Origin & Significance",
		PromptTemplate: `You are a cultural historian. Describe the origin of this artifact—where it likely came from, the culture that produced it—and explain its historical and cultural significance. Why does it matter today?`,
	},
	{
		Label:          "Cultural Analysis",
		PromptTemplate: `You are an expert in cultural heritage. Analyze the artifact's cultural meaning, symbolism, religious or social significance, and how it reflects the values or beliefs of the people who created it.`,
	},
	{
		Label:          "Conservation & Condition",
		PromptTemplate: `You are a museum conservator. Assess the artifact's current condition, visible signs of wear or aging, potential materials and techniques used in its creation, and any conservation considerations or restoration that might be relevant.`,
	},
}

// Options returns a copy of the catalog in display order.
func Options() []domain.AnalysisOption {
	out := make([]domain.AnalysisOption, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the option selected when the page first loads.
func Default() domain.AnalysisOption {
	return catalog[0]
}

// Labels returns the option labels in display order.
func Labels() []string {
	labels := make([]string, len(catalog))
	for i, opt := range catalog {
		labels[i] = opt.Label
	}
	return labels
}

// Find looks up an option by its label.
func Find(label string) (domain.AnalysisOption, bool) {
	for _, opt := range catalog {
		if opt.Label == label {
			return opt, true
		}
	}
	return domain.AnalysisOption{}, false
}
