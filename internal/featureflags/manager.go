package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Flags used by the API. Unknown names evaluate to off.
const (
	// FlagInterestRanking re-ranks connection recommendations by shared
	// interests when the caller asks for it.
	FlagInterestRanking = "interest_ranking"
)

// Manager evaluates feature flags from a comma-separated key=value list,
// e.g. "interest_ranking=on,new_feed=25%".
type Manager struct {
	flags map[string]string
}

// NewManager parses raw flag config. Malformed pairs are skipped.
func NewManager(raw string) *Manager {
	flags := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := normalize(parts[0])
		value := normalize(parts[1])
		if name == "" || value == "" {
			continue
		}
		flags[name] = value
	}

	return &Manager{flags: flags}
}

// Enabled reports whether a flag is on for a given user. Values may be
// on/true/1, off/false/0, or a percentage rollout like "25%" which buckets
// users deterministically.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}

	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	if strings.HasSuffix(value, "%") {
		pct, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
		if err != nil || pct <= 0 {
			return false
		}
		if pct >= 100 {
			return true
		}
		if userID == 0 {
			return false
		}
		return bucket(name, userID) < pct
	}

	return false
}

// Snapshot evaluates every configured flag for one user.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%s:%d", normalize(name), userID)))
	return int(h.Sum32() % 100)
}
