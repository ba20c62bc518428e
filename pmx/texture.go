// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

func (d *decoder) decodeTextures() error {
	r := d.r
	n := r.Count(4)
	textures := make([]string, n)
	for i := range textures {
		textures[i] = readText(r)
	}
	d.pmx.Textures = textures
	return nil
}

func (e *encoder) encodeTextures() {
	w := e.w
	w.Count(len(e.pmx.Textures))
	for _, tex := range e.pmx.Textures {
		writeText(w, tex)
	}
}
