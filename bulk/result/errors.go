package result

import "errors"

// ErrNoIndexMap indicates a batch without an index map was passed to a Collector.
var ErrNoIndexMap = errors.New("result: batch has no index map")
