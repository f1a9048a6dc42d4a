package util

import (
	"sort"
)

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

type TopNStrIntDatum struct {
	S string
	N int
}

type TopNStrIntData []TopNStrIntDatum

func (arr TopNStrIntData) Len() int {
	return len(arr)
}

func (arr TopNStrIntData) Swap(a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

// Less orders by descending count, ties by string
func (arr TopNStrIntData) Less(a, b int) bool {
	if arr[a].N != arr[b].N {
		return arr[a].N > arr[b].N
	}
	return arr[a].S < arr[b].S
}

func GetTopNStrInt(m map[string]int, n int) []TopNStrIntDatum {
	data := make(TopNStrIntData, 0, len(m))
	for k, v := range m {
		data = append(data, TopNStrIntDatum{k, v})
	}
	sort.Sort(data)
	return data[:Min(len(data), n)]
}
