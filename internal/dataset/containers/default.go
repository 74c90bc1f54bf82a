// SPDX-License-Identifier: Apache-2.0

package containers

import "github.com/trainset/trainset/internal/dataset"

// Default returns a Loader with every container registered, jsonl before txt.
func Default() *dataset.Loader {
	return dataset.NewLoader(
		NewJSONLContainer(),
		NewTextContainer(),
	)
}
