package mime

var Extension = map[string]MIME{
	".avif":  AVIF,
	".css":   CSS,
	".csv":   CSV,
	".gif":   GIF,
	".htm":   HTML,
	".html":  HTML,
	".jpeg":  JPEG,
	".jpg":   JPEG,
	".js":    JAVASCRIPT,
	".mjs":   JAVASCRIPT,
	".json":  JSON,
	".md":    Markdown,
	".mp3":   MP3,
	".mp4":   MP4,
	".pdf":   PDF,
	".png":   PNG,
	".svg":   SVG,
	".txt":   Plain,
	".wasm":  WASM,
	".webm":  WEBM,
	".webp":  WEBP,
	".woff2": WOFF2,
	".xml":   XML,
	".gz":    GZIP,
	".sql":   SQL,
	".yaml":  YAML,
	".yml":   YAML,
	".zip":   ZIP,
	".zlib":  ZLIB,
	".zstd":  ZSTD,
	".ico":   ICO,
}
