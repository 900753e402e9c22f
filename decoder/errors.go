package decoder

import "errors"

// ErrSyndromeLength indicates the syndrome passed to Decode has a length
// different from the graph's vertex count.
var ErrSyndromeLength = errors.New("decoder: syndrome length does not match num_vertices")
