package chain

import "errors"

// ErrBrokenChain indicates a Next link that does not continue from the current edge's End.
var ErrBrokenChain = errors.New("chain: edge end does not meet next edge start")
