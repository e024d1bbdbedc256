package deployment

import "strings"

const (
	// Unknown marks a value that could not be determined from the environment.
	Unknown = "unknown"

	StageBlue  = "blue"
	StageGreen = "green"

	revisionSeparator = "--"
	fallbackVersion   = "1.0.0"
)

// Identity describes which revision of the service is running and which side
// of a blue-green rollout it represents. It is resolved once at startup.
type Identity struct {
	RevisionName string
	CommitID     string
	Stage        string
}

// Resolve derives the deployment identity from the raw revision name and stage
// values read from the environment.
//
// Revisions follow the "<name>--<commit>" convention; the commit id is whatever
// follows the first separator. An undetermined stage defaults to blue whenever
// a commit id is present, and the placeholder "unknown" counts as present.
func Resolve(revisionName, stage string) Identity {
	commitID := Unknown
	if revisionName != Unknown {
		if _, commit, found := strings.Cut(revisionName, revisionSeparator); found {
			commitID = commit
		}
	}

	if stage == Unknown && commitID != "" {
		stage = StageBlue
	}

	return Identity{
		RevisionName: revisionName,
		CommitID:     commitID,
		Stage:        stage,
	}
}

// IsGreen reports whether the process serves the green side of the rollout.
func (i Identity) IsGreen() bool {
	return i.Stage == StageGreen
}

// AppVersion is the version advertised for the running build.
func (i Identity) AppVersion() string {
	if i.CommitID == Unknown {
		return fallbackVersion
	}
	return i.CommitID
}
