package release

import (
	"os"
	"path/filepath"
)

// ComponentPlan describes what Run would do to a single component.
type ComponentPlan struct {
	Component      Component
	Exists         bool   // the version file is present on disk
	CurrentVersion string // "-" when missing or unreadable
}

// Plan inspects every registered component without mutating anything. It
// backs both the dry-run output and the pre-run confirmation table.
func (s *Service) Plan() []ComponentPlan {
	plans := make([]ComponentPlan, 0, len(s.components))
	for _, comp := range s.components {
		plan := ComponentPlan{Component: comp, CurrentVersion: "-"}

		path := filepath.Join(s.root, comp.VersionFile)
		if _, err := os.Stat(path); err == nil {
			plan.Exists = true
			if handler, err := s.registry.Get(comp.Type); err == nil {
				if current, err := handler.GetVersion(path); err == nil {
					plan.CurrentVersion = current
				}
			}
		}

		plans = append(plans, plan)
	}
	return plans
}

// FilesToStage computes the exact set of root-relative paths handed to git:
// every version file, plus each lock file that exists on disk at the time
// of the call.
func (s *Service) FilesToStage() []string {
	var paths []string
	for _, comp := range s.components {
		paths = append(paths, comp.VersionFile)

		handler, err := s.registry.Get(comp.Type)
		if err != nil {
			continue
		}
		lockRel := filepath.Join(comp.LockDir, handler.LockfileName())
		if _, err := os.Stat(filepath.Join(s.root, lockRel)); err == nil {
			paths = append(paths, lockRel)
		}
	}
	return paths
}
