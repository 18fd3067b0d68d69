package domain

// PipelineConfigFile is the metadata file identifying a pipeline
// configuration, relative to its root.
const PipelineConfigFile = "config/core/pipeline_configuration.yml"

// PipelineConfig is the metadata of a pipeline configuration deployment.
type PipelineConfig struct {
	ProjectName string
	Name        string
	ID          int
	Path        string
}
