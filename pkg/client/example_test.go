package client_test

import (
	"context"

	"github.com/keldric/stargen/pkg/client"
)

func ExampleNewRequest() {
	req := client.NewRequest().
		Seed(42).
		GardenWorld()

	// Example: send to a running server (commented out for test)
	// ctx := context.Background()
	// c := client.New("http://localhost:8080")
	// sys, err := c.Generate(ctx, req)
	// if err != nil {
	// 	log.Fatal(err)
	// }
	// fmt.Println(sys.ID)
	_ = req
	// Output:
}

func ExampleClient_Generate() {
	ctx := context.Background()
	c := client.New("http://localhost:8080")

	// This would request a system from the server.
	// Uncomment to actually send:
	// sys, err := c.Generate(ctx, client.NewRequest().SeedText("sol"))
	// if err != nil {
	// 	log.Fatal(err)
	// }
	// fmt.Printf("%d stars\n", sys.NumberOfStars)

	_ = ctx
	_ = c
	// Output:
}
