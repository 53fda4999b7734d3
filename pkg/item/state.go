// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package item

// 🚦 State is the validation classification of an item
type State int

const (
	// StateUndefined means no rule group matched the extension
	StateUndefined State = iota
	// StateIgnored means the directory is ignored or the category has no groups
	StateIgnored
	// StateInvalid means a group matched but its candidates were not found
	StateInvalid
	// StateValid means a group accepted the name
	StateValid
)

// Severity is how a host should surface a State.
type Severity int

const (
	SeverityOK Severity = iota
	SeveritySkipped
	SeverityWarning
	SeverityError
)

var stateNames = map[State]string{
	StateUndefined: "undefined",
	StateIgnored:   "ignored",
	StateInvalid:   "invalid",
	StateValid:     "valid",
}

var stateSeverity = map[State]Severity{
	StateUndefined: SeverityWarning,
	StateIgnored:   SeveritySkipped,
	StateInvalid:   SeverityError,
	StateValid:     SeverityOK,
}

// AllStates lists every state in declaration order.
var AllStates = []State{StateUndefined, StateIgnored, StateInvalid, StateValid}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Severity maps the state to its reporting severity. Unknown states are errors.
func (s State) Severity() Severity {
	if sev, ok := stateSeverity[s]; ok {
		return sev
	}
	return SeverityError
}

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeveritySkipped:
		return "skipped"
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}
