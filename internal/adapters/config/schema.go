package config

// pipelineConfigDTO mirrors the YAML structure of
// config/core/pipeline_configuration.yml.
type pipelineConfigDTO struct {
	ProjectName string `yaml:"project_name"`
	ProjectID   int    `yaml:"project_id"`
	PcName      string `yaml:"pc_name"`
	PcID        int    `yaml:"pc_id"`
}
