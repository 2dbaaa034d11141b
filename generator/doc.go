// Package generator produces a restaurant name and menu from a cuisine and a
// set of dietary preferences.
//
// A Generator makes two model calls through a provider.Client: the first asks
// for a restaurant name, the second asks for a menu for that restaurant. The
// menu text is normalized and parsed with both parser entry points:
//
//	gen := generator.New(client)
//	res, err := gen.Generate(ctx, generator.Options{
//	    Cuisine: "Italian",
//	    Diets:   []string{"Vegan"},
//	})
//	fmt.Println(res.RestaurantName)
//	fmt.Print(formatter.Format(res.Parsed))
//
// Retryable provider failures are retried and can escalate to a fallback
// model (see Escalation). Session keeps the most recent Result in memory.
package generator
