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

package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	customerrors "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

const maxRequestBodyBytes = 1 << 20

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
			TraceID     string `json:"trace_id,omitempty"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
			TraceID:     clientError.ErrorMessage.TraceID,
		})
		return
	}

	logger := log.GetLogger()
	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		logger.Error(serverError.Error(), log.String("trace_id", serverError.TraceID))
	} else if err != nil {
		logger.Error("Unclassified error while serving request", log.Error(err))
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Error("Failed to encode response", log.Error(err))
	}
}

// DecodeJSONBody decodes the request body into v. An empty body leaves v untouched.
func DecodeJSONBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return customerrors.NewClientErrorFrom(customerrors.BAD_REQUEST,
			errors.Wrap(err, "invalid request body").Error(), http.StatusBadRequest)
	}
	return nil
}

// PathInt64 parses a numeric path value such as {id}.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, customerrors.NewClientErrorFrom(customerrors.BAD_REQUEST,
			"Path parameter '"+name+"' must be a positive integer.", http.StatusBadRequest)
	}
	return value, nil
}
