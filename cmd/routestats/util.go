package main

import "sort"

func sortedKeys(m map[string]int) []string {
	keys := []string{}
	for k,_ := range m { keys = append(keys, k) }
	sort.Strings(keys)
	return keys
}
