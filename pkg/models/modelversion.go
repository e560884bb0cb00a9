package models

// ModelSnapshot is the resolved model bundle the pipeline runs with:
// either the active ModelVersion row or the built-in defaults when none
// has been activated yet.
type ModelSnapshot struct {
	VersionID         string             `json:"version_id,omitempty"`
	ClassifierVersion string             `json:"classifier_version"`
	EmbeddingModel    string             `json:"embedding_model"`
	LLMVersion        string             `json:"llm_version"`
	Dimension         int                `json:"dimension"`
	Thresholds        map[string]float64 `json:"thresholds"`
}

// ThresholdFor returns the auto-label threshold for lang, falling back to
// the built-in default for languages the bundle does not configure.
func (m ModelSnapshot) ThresholdFor(lang Language) float64 {
	if t, ok := m.Thresholds[string(lang)]; ok {
		return t
	}
	if t, ok := DefaultThresholds()[string(lang)]; ok {
		return t
	}
	return 0.9
}

// ActivateModelRequest describes a new model bundle to activate.
type ActivateModelRequest struct {
	ClassifierVersion string             `json:"classifier_version"`
	EmbeddingModel    string             `json:"embedding_model"`
	LLMVersion        string             `json:"llm_version"`
	Dimension         int                `json:"dimension"`
	Thresholds        map[string]float64 `json:"thresholds"`
}
