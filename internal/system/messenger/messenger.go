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

package messenger

// Message types.
const (
	TypeStatus  = "status"
	TypeWarning = "warning"
	TypeError   = "error"
)

// Message is a user facing notice returned alongside a response body.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Messages collects the notices produced while serving one request.
type Messages []Message

func (m *Messages) Status(text string) {
	*m = append(*m, Message{Type: TypeStatus, Text: text})
}

func (m *Messages) Warning(text string) {
	*m = append(*m, Message{Type: TypeWarning, Text: text})
}

func (m *Messages) Error(text string) {
	*m = append(*m, Message{Type: TypeError, Text: text})
}

// HasType reports whether a message of the given type was recorded.
func (m Messages) HasType(messageType string) bool {
	for _, msg := range m {
		if msg.Type == messageType {
			return true
		}
	}
	return false
}
