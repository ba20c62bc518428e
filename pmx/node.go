// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import "github.com/Pachira762/MiniMmdTools/mmderr"

// NodeKind tags whether a display node item references a bone or a morph,
// since those two index spaces use independently chosen widths.
type NodeKind uint8

const (
	NodeBone NodeKind = iota
	NodeMorph
)

// NodeItem is one entry of a display node's item list.
type NodeItem struct {
	Kind  NodeKind
	Index int32
}

// Node is one tab of the bone/morph display panel.
type Node struct {
	Name, NameEn string
	Special      bool
	Items        []NodeItem
}

func (d *decoder) decodeNodes() error {
	r := d.r
	n := r.Count(4)
	boneWidth := d.pmx.Header.BoneIndexWidth
	morphWidth := d.pmx.Header.MorphIndexWidth

	nodes := make([]Node, n)
	for i := range nodes {
		nd := &nodes[i]
		nd.Name = readText(r)
		nd.NameEn = readText(r)
		nd.Special = r.Bool()

		items := make([]NodeItem, r.Count(2))
		for j := range items {
			kind := NodeKind(r.U8())
			var index int32
			switch kind {
			case NodeBone:
				index = r.SignedIndex(boneWidth)
			case NodeMorph:
				index = r.SignedIndex(morphWidth)
			default:
				return mmderr.ErrInvalidEnum
			}
			items[j] = NodeItem{Kind: kind, Index: index}
		}
		nd.Items = items
	}
	d.pmx.Nodes = nodes
	return nil
}

func (e *encoder) encodeNodes() {
	w := e.w
	w.Count(len(e.pmx.Nodes))
	for _, nd := range e.pmx.Nodes {
		writeText(w, nd.Name)
		writeText(w, nd.NameEn)
		w.Bool(nd.Special)

		w.Count(len(nd.Items))
		for _, item := range nd.Items {
			w.U8(uint8(item.Kind))
			w.WriteIndex(item.Index)
		}
	}
}
