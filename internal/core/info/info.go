package info

import "time"

// AppName is the display name shared by the page and the info endpoint.
const AppName = "Blue-Green Deployment Demo"

// Info describes the running deployment.
type Info struct {
	AppName         string      `json:"app_name"`
	CommitID        string      `json:"commit_id"`
	Revision        string      `json:"revision"`
	DeploymentStage string      `json:"deployment_stage"`
	Timestamp       time.Time   `json:"timestamp"`
	Environment     Environment `json:"environment"`
}

// Environment holds process level settings.
type Environment struct {
	Port           int    `json:"port"`
	RuntimeVersion string `json:"runtime_version"`
}
