package bitpack

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// CountFrequencies counts the occurrences of each byte value in the input,
// saturating at the maximum count.  The result is suitable as the
// frequencies argument to BuildTable.
func CountFrequencies(input []byte) []uint32 {
	frequencies := make([]uint32, NumByteSymbols)
	for _, b := range input {
		if frequencies[b] != math.MaxUint32 {
			frequencies[b]++
		}
	}
	return frequencies
}

// BuildTable constructs a Huffman prefix code for the given symbol
// frequencies and returns it as a Table.  The first argument tells BuildTable
// how many Symbols are in the alphabet, and the second argument lists the
// frequency (i.e. number of occurrences) for each Symbol, one for each Symbol
// except that any Symbol not represented in the list is assumed to have a
// frequency of 0.  Symbols with frequency 0 receive a Codeword of Size 0.
//
// The assignment is deterministic: equal frequencies are broken first by
// symbol order, then by order of combination.
func BuildTable[W Word](numSymbols int, frequencies []uint32) *Table[W] {
	assert.Assertf(numSymbols <= int(MaxSymbol), "numSymbols %d > MaxSymbol %d", numSymbols, int(MaxSymbol))
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))
	assert.Assertf(numSymbols-1 <= MaxCodewordBits, "numSymbols %d would exceed MaxCodewordBits %d", numSymbols, MaxCodewordBits)

	codes := make([]Codeword[W], numSymbols)
	h := treeHeap{}
	for symbol := Symbol(0); symbol < Symbol(len(frequencies)); symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			h.list = append(h.list, nodeAndFreq{
				node:  &treeNode{symbol: symbol},
				freq:  freq,
				order: uint32(symbol),
			})
		}
	}

	if len(h.list) <= 2 {
		// Degenerate codes with fewer than three symbols skip the tree:
		// each symbol gets a 1-bit codeword, assigned in symbol order.
		for index := range h.list {
			var cw Codeword[W]
			cw.AppendBit(index == 1)
			codes[h.list[index].node.symbol] = cw
		}
		return NewTable(codes)
	}

	assignCodes(codes, buildTree(&h, uint32(numSymbols)))
	return NewTable(codes)
}

// buildTree combines the heap's nodes into a single Huffman tree and returns
// its root.  The heap must hold at least one node.
func buildTree(h *treeHeap, nextOrder uint32) *treeNode {
	h.Init()

	// Combination order: pop the two lowest-frequency subtrees, join them
	// under a new branch, push the branch back.  Branches are ordered
	// after every leaf, keeping ties deterministic.
	for h.Len() > 1 {
		a := heap.Pop(h).(nodeAndFreq)
		b := heap.Pop(h).(nodeAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint32
		}

		branch := &treeNode{symbol: InvalidSymbol, left: a.node, right: b.node}
		heap.Push(h, nodeAndFreq{node: branch, freq: freqSum, order: nextOrder})
		nextOrder++
	}

	return heap.Pop(h).(nodeAndFreq).node
}

// assignCodes walks the tree and assigns each leaf's path as its codeword:
// a left edge appends a 0 bit, a right edge a 1 bit.
//
// The walk is iterative; a maximally skewed tree is as deep as the alphabet
// is wide.  stackItem.x tracks progress through each branch:
//
//	x=0 → we just arrived at this branch for the first time
//	x=1 → we have already descended into the left child
//	x=2 → we have already descended into both children
func assignCodes[W Word](codes []Codeword[W], root *treeNode) {
	type stackItem struct {
		node *treeNode
		x    byte
	}

	var prefix Codeword[W]
	stack := make([]stackItem, 0, MaxCodewordBits)
	stack = append(stack, stackItem{node: root})

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0, 1:
			child := top.node.left
			if x == 1 {
				child = top.node.right
			}
			prefix.AppendBit(x == 1)
			if child.isLeaf() {
				codes[child.symbol] = prefix.Clone()
				prefix.DropBit()
			} else {
				stack = append(stack, stackItem{node: child})
			}
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				prefix.DropBit()
			}
		}
	}
}

// type treeNode + type nodeAndFreq + type treeHeap {{{

type treeNode struct {
	symbol      Symbol
	left, right *treeNode
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil
}

type nodeAndFreq struct {
	node  *treeNode
	freq  uint32
	order uint32
}

type treeHeap struct {
	list []nodeAndFreq
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.order < b.order
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndFreq))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
