// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes rep as indented JSON followed by a newline.
func WriteJSON(w io.Writer, rep Report) error {
	jsonData, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	jsonData = append(jsonData, '\n')
	if _, err := w.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
