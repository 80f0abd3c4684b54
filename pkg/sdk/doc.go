// Package cerebro provides an embedded Go client for the cerebro
// knowledge base: hybrid keyword/embedding document ranking backed by
// Redis, without running the HTTP API.
//
//	client, _ := cerebro.New(ctx, cerebro.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	results, _ := client.Search(ctx, "annual leave entitlement")
//	answer, _ := client.Ask(ctx, "how many vacation days do I get?")
package cerebro
