// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"

	"github.com/kortschak/tinyfasta"
)

func TestGroups(t *testing.T) {
	var recs []*tinyfasta.Record
	for _, s := range []struct{ desc, seq string }{
		{desc: "a", seq: "AAAATTTT"},
		{desc: "b", seq: "CCCC"},
		{desc: "c", seq: "ATTT"},
		{desc: "d", seq: "GGCCCCGG"},
		{desc: "e", seq: ""},
		{desc: "f", seq: "AAAATTTT"},
	} {
		recs = append(recs, tinyfasta.Create(s.desc, s.seq))
	}

	var got [][]int64
	for _, c := range groups(recs) {
		var ids []int64
		for _, n := range c {
			ids = append(ids, n.ID())
		}
		got = append(got, ids)
	}
	want := [][]int64{{0, 2, 5}, {1, 3}, {4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected groups: got:%v want:%v", got, want)
	}
}
