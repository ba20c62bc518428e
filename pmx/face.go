// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import "github.com/Pachira762/MiniMmdTools/mmderr"

func (d *decoder) decodeFaces() error {
	r := d.r
	n := r.Count(1)
	if n%3 != 0 {
		return mmderr.ErrInvalidCount
	}

	width := d.pmx.Header.VertexIndexWidth
	faces := make([]int32, n)
	for i := range faces {
		faces[i] = r.VertexIndex(width)
	}
	d.pmx.Faces = faces
	return nil
}

func (e *encoder) encodeFaces() {
	w := e.w
	w.Count(len(e.pmx.Faces))
	for _, idx := range e.pmx.Faces {
		w.WriteIndex(idx)
	}
}
