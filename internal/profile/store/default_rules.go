/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

// Candidate is the default bookkeeping view of a profile.
type Candidate struct {
	Id        int64
	Active    bool
	IsDefault bool
}

// DefaultPlan lists the default flag changes one save implies.
type DefaultPlan struct {
	// IsDefault is the flag the saved profile is stored with.
	IsDefault bool
	// Clear holds siblings that lose the default flag.
	Clear []int64
	// Promote is the sibling that becomes default, or 0.
	Promote int64
}

// PlanDefaults decides the default flags of a saved profile and its siblings
// (profiles of the same owner and type). wasDefault is the stored flag before
// the save, wantDefault the flag the caller saves with.
//
//   - an inactive profile is never default
//   - an active profile saved as default takes the flag from every sibling
//   - an active profile becomes default when no sibling holds it
//   - unsetting the flag hands it to the oldest active sibling, if any
//   - when no default remains the oldest active sibling is promoted
func PlanDefaults(saved Candidate, wasDefault, wantDefault bool, siblings []Candidate) DefaultPlan {

	plan := DefaultPlan{}
	siblingDefault := false
	for _, sibling := range siblings {
		if sibling.IsDefault {
			siblingDefault = true
		}
	}

	switch {
	case !saved.Active:
		plan.IsDefault = false
	case wantDefault:
		plan.IsDefault = true
		for _, sibling := range siblings {
			if sibling.IsDefault {
				plan.Clear = append(plan.Clear, sibling.Id)
			}
		}
		return plan
	case wasDefault && !siblingDefault:
		// Explicit unset: keep the flag unless an active sibling can take it.
		plan.IsDefault = oldestActive(siblings) == 0
	default:
		plan.IsDefault = !siblingDefault
	}

	if !plan.IsDefault && !siblingDefault {
		plan.Promote = oldestActive(siblings)
	}
	return plan
}

// PlanAfterDelete returns the sibling to promote once a profile is deleted.
func PlanAfterDelete(siblings []Candidate) int64 {
	for _, sibling := range siblings {
		if sibling.IsDefault {
			return 0
		}
	}
	return oldestActive(siblings)
}

func oldestActive(siblings []Candidate) int64 {
	var oldest int64
	for _, sibling := range siblings {
		if sibling.Active && (oldest == 0 || sibling.Id < oldest) {
			oldest = sibling.Id
		}
	}
	return oldest
}
