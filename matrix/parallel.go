// SPDX-License-Identifier: MIT

// Package matrix: row-partitioned execution for kernels whose output rows are independent.
//
// Each block [lo, hi) of output rows is written by exactly one goroutine and the
// inputs are read-only, so no synchronization is needed beyond the final Wait.
// Loop order inside a row is the same as the sequential path: results are bit-identical.

package matrix

import "golang.org/x/sync/errgroup"

// rowBlock is a half-open range of output rows.
type rowBlock struct{ lo, hi int }

// splitRows partitions [0, rows) into at most workers contiguous blocks,
// none smaller than minRows (except when rows itself is smaller).
// Complexity: O(workers).
func splitRows(rows, workers, minRows int) []rowBlock {
	if rows <= 0 {
		return nil
	}
	if maxBlocks := (rows + minRows - 1) / minRows; workers > maxBlocks {
		workers = maxBlocks
	}
	if workers < 1 {
		workers = 1
	}

	blocks := make([]rowBlock, 0, workers)
	size, extra := rows/workers, rows%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < extra {
			hi++ // spread the remainder over the first blocks
		}
		blocks = append(blocks, rowBlock{lo: lo, hi: hi})
		lo = hi
	}

	return blocks
}

// forEachRowBlock runs body over row blocks of [0, rows) and returns once every
// block is done. With a single block the body runs on the calling goroutine.
func forEachRowBlock(rows int, o Options, body func(lo, hi int)) error {
	blocks := splitRows(rows, o.workers, o.minRowsPer)
	if len(blocks) <= 1 {
		body(0, rows)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, blk := range blocks {
		blk := blk
		g.Go(func() error {
			body(blk.lo, blk.hi)
			return nil
		})
	}

	return g.Wait()
}
