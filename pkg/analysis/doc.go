// Package analysis validates generated module graphs. An Engine runs
// a fixed, ordered rule list over a scenario and reports diagnostics
// at three severities: errors break the scenario, warnings flag risky
// configuration, infos suggest improvements. Analysis never modifies
// the scenario and never fails; a broken graph comes back as error
// diagnostics, not as a Go error.
package analysis
