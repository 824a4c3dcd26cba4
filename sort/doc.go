// Package sort provides the in-place integer sorts compared by sortbench:
// quicksort, insertion sort, bubble sort, selection sort and shell sort.
//
// Every sort has the same shape: it takes a slice and sorts it in place in
// non-decreasing order using the built-in integer ordering. None of them
// allocate a second buffer. Quicksort only needs O(log n) stack for its
// recursion.
//
// # Algorithms
//
//   - QuickSort: randomized Lomuto partitioning, expected O(n log n).
//   - InsertionSort: stable, adaptive, O(n) on sorted input, O(n²) worst case.
//   - BubbleSort: stable, early exit after a pass without swaps.
//   - SelectionSort: always O(n²) comparisons, at most n-1 swaps.
//   - ShellSort: gapped insertion sort with the halving gap sequence n/2, n/4, ..., 1.
//
// # Randomness
//
// Quicksort never touches a global random source. Callers either pass a
// *rand.Rand or use a QuickSorter, which owns one:
//
//	import "github.com/ajroetker/go-sortbench/sort"
//
//	func Process(data []int) {
//	    qs := sort.NewQuickSorter(42) // same seed, same pivots
//	    qs.Sort(data)
//	}
//
// # Concurrency
//
// All functions run to completion on the calling goroutine. Sorting the same
// slice from several goroutines at once requires external synchronization.
package sort
