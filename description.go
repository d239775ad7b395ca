// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import "strings"

// Description is a FASTA header line. Its content always begins with '>'.
type Description struct {
	content string
}

// NewDescription returns a Description holding the normalized raw text.
func NewDescription(raw string) Description {
	var d Description
	d.Update(raw)
	return d
}

// Update replaces the content of d. Surrounding white space is removed
// and a leading '>' is added if it is not already present.
func (d *Description) Update(raw string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, ">") {
		raw = ">" + raw
	}
	d.content = raw
}

func (d Description) String() string { return d.content }

// Contains returns whether the description matches t.
func (d Description) Contains(t Term) bool { return t.Match(d.content) }
