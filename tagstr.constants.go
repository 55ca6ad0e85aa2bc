package tagstr

// Cache defaults
const (
	// DefaultMaxEntries is the default bound on cached static states.
	DefaultMaxEntries = 1024
)

// Whitespace class stripped by the trimmer (per the backtick-literal
// grammar's inline whitespace set).
const (
	charTab          = '\t'
	charVerticalTab  = '\v'
	charFormFeed     = '\f'
	charSpace        = ' '
	charNoBreakSpace = '\u00a0'
	charBOM          = '\ufeff'
)

// Unicode line terminator runes recognized by the trimmer and the
// escape cooker, alongside LF, CR and CRLF. CRLF is treated as a
// single terminator token.
const (
	charLineSeparator = '\u2028'
	charParaSeparator = '\u2029'
)

// Log message constants
const (
	LogMsgTagBuilt      = "tag built"
	LogMsgCacheHit      = "static cache hit"
	LogMsgCacheMiss     = "static cache miss"
	LogMsgCacheBypass   = "chunk sequence not cache eligible"
	LogMsgCacheEviction = "static cache entry evicted"
	LogMsgCachePurged   = "static cache purged"
	LogMsgStaticFailed  = "static computation failed"
)

// Log field name constants
const (
	LogFieldChunkCount = "chunk_count"
	LogFieldValueCount = "value_count"
	LogFieldKey        = "key"
	LogFieldEntries    = "entries"
	LogFieldPrefixLen  = "prefix_length"
	LogFieldError      = "error"
)
