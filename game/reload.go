package game

import (
	"errors"
	"fmt"

	"github.com/milk9111/starblaster/ecs/system"
	"github.com/milk9111/starblaster/prefabs"
)

// Reload re-reads what a watcher batch touched. Whatever loads cleanly is
// kept even if the other half fails; both apply from the next run.
func (s *Session) Reload(change prefabs.Change) error {
	var errs []error
	if change.Tuning {
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			errs = append(errs, err)
		} else {
			s.SetTuning(tuning)
		}
	}
	if change.Policy {
		policy, err := system.LoadBossPolicy(s.policy.Name())
		if err != nil {
			errs = append(errs, fmt.Errorf("game: reload policy: %w", err))
		} else {
			s.SetPolicy(policy)
		}
	}
	return errors.Join(errs...)
}
