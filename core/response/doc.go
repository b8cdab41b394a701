// Package response provides the framework-native response objects the
// gateway adapter serializes back into outbound gateway events.
//
// A handler produces either a buffered response, carrying a fully
// materialized body, or a streaming response, carrying a lazy body producer
// that pushes chunks through a backpressure-aware Writer the adapter assigns
// before invoking it.
//
// Buffered responses are built with the constructors:
//
//	response.Text("hello")
//	response.JSON(map[string]any{"ok": true})
//	response.Empty(http.StatusNoContent)
//	response.Raw(data, "application/octet-stream", response.WithStatus(201))
//
// Streaming responses wrap a producer function:
//
//	response.NewStreaming(func(ctx context.Context, w response.Writer) error {
//	    for _, chunk := range chunks {
//	        if err := w.PushData(ctx, chunk); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	})
package response
