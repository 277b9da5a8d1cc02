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

package audit

import (
	"context"
	"strconv"

	sysContext "github.com/wso2/identity-user-profile-service/internal/system/context"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

// Record writes an audit event for a state change initiated by the principal of ctx.
func Record(ctx context.Context, action, targetType, targetId string, data interface{}) {
	initiatorId, initiatorType := "system", log.InitiatorTypeSystem
	if principal := sysContext.GetPrincipal(ctx); principal != nil {
		initiatorId = strconv.FormatInt(principal.UserId, 10)
		initiatorType = log.InitiatorTypeUser
		if principal.Admin {
			initiatorType = log.InitiatorTypeAdmin
		}
	}
	log.FromContext(ctx).Audit(log.AuditEvent{
		InitiatorID:   initiatorId,
		InitiatorType: initiatorType,
		TargetID:      targetId,
		TargetType:    targetType,
		ActionID:      action,
		TraceID:       sysContext.GetTraceID(ctx),
		Data:          data,
	})
}
