// export_test.go exports private functions for white-box testing.
package precompiler

var (
	RenderCollection = renderCollection
	ResourcePrefix   = resourcePrefix
)
