package headers

// Names of the header fields populated automatically. All of them are lower-cased, as
// automatically populated fields are always transmitted lower-cased.
const (
	ContentLength      = "content-length"
	ContentType        = "content-type"
	ContentDisposition = "content-disposition"
	LastModified       = "last-modified"
	ETag               = "etag"
	TransferEncoding   = "transfer-encoding"
)
