package orders

import (
	"testing"

	"vypar/models"

	"go.mongodb.org/mongo-driver/bson"
)

func stageKey(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func TestScopedItemRowsAdminScope(t *testing.T) {
	p := scopedItemRows("")
	want := []string{"$unwind", "$lookup", "$unwind"}
	if len(p) != len(want) {
		t.Fatalf("admin pipeline has %d stages, want %d", len(p), len(want))
	}
	for i, k := range want {
		if stageKey(p[i]) != k {
			t.Errorf("stage %d = %s, want %s", i, stageKey(p[i]), k)
		}
	}
}

func TestScopedItemRowsSellerScope(t *testing.T) {
	p := scopedItemRows("s1")
	if len(p) != 4 {
		t.Fatalf("seller pipeline has %d stages, want 4", len(p))
	}
	match := p[3]
	if stageKey(match) != "$match" {
		t.Fatalf("last stage = %s, want $match", stageKey(match))
	}
	cond, ok := match[0].Value.(bson.D)
	if !ok || len(cond) != 1 || cond[0].Key != "product.sellerid" || cond[0].Value != "s1" {
		t.Fatalf("match condition = %v", match[0].Value)
	}
}

func TestItemRowsWithUserJoinsNameOnly(t *testing.T) {
	p := itemRowsWithUser("s1")
	set := p[len(p)-2]
	if stageKey(set) != "$set" {
		t.Fatalf("expected $set before final $unwind, got %s", stageKey(set))
	}
	fields := set[0].Value.(bson.D)
	if fields[0].Key != "user" || fields[0].Value != "$user.name" {
		t.Fatalf("user projection = %v", fields)
	}
}

func TestSummaryPipelinesGroupKeys(t *testing.T) {
	users := userSalesPipeline("")
	g := users[len(users)-1]
	if stageKey(g) != "$group" {
		t.Fatalf("user sales last stage = %s", stageKey(g))
	}
	if id := g[0].Value.(bson.D)[0]; id.Key != "_id" || id.Value != "$userid" {
		t.Fatalf("user sales group key = %v", id)
	}

	daily := dailySalesPipeline("")
	sort := daily[len(daily)-1]
	if stageKey(sort) != "$sort" {
		t.Fatalf("daily sales must end sorted by day, got %s", stageKey(sort))
	}
	if s := sort[0].Value.(bson.D)[0]; s.Key != "_id" || s.Value != 1 {
		t.Fatalf("daily sort = %v", s)
	}

	cats := categoryCountPipeline("s9")
	g = cats[len(cats)-1]
	if id := g[0].Value.(bson.D)[0]; id.Value != "$product.category" {
		t.Fatalf("category group key = %v", id)
	}
	// seller scope must appear before the group stage
	if stageKey(cats[3]) != "$match" {
		t.Fatalf("scoped category pipeline missing $match, got %s", stageKey(cats[3]))
	}
}

func TestEligibleSeller(t *testing.T) {
	products := []models.Product{
		{ProductID: "p1", SellerID: "sellerA"},
		{ProductID: "p2", SellerID: "sellerB"},
	}
	if !eligibleSeller(products, "sellerA") {
		t.Error("seller owning one of many items must be eligible")
	}
	if !eligibleSeller(products, "sellerB") {
		t.Error("the other contributing seller must be eligible too")
	}
	if eligibleSeller(products, "sellerC") {
		t.Error("seller owning none of the items must not be eligible")
	}
	if eligibleSeller(nil, "sellerA") {
		t.Error("empty order must not be deliverable by anyone")
	}
}

func TestValidateTotals(t *testing.T) {
	good := models.Order{
		OrderItems: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: 10},
			{ProductID: "p2", Quantity: 1, Price: 5},
		},
		ItemsPrice:    25,
		ShippingPrice: 4,
		TaxPrice:      1,
		TotalPrice:    30,
	}
	if err := ValidateTotals(good); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}

	bad := []models.Order{
		{},
		{OrderItems: []models.OrderItem{{ProductID: "p1", Quantity: 0, Price: 10}}, ItemsPrice: 0, TotalPrice: 0},
		{OrderItems: []models.OrderItem{{ProductID: "p1", Quantity: 1, Price: 10}}, ItemsPrice: 99, TotalPrice: 99},
		{OrderItems: []models.OrderItem{{ProductID: "p1", Quantity: 1, Price: 10}}, ItemsPrice: 10, TotalPrice: 50},
		{OrderItems: []models.OrderItem{{Quantity: 1, Price: 10}}, ItemsPrice: 10, TotalPrice: 10},
	}
	for i, o := range bad {
		if err := ValidateTotals(o); err == nil {
			t.Errorf("case %d: expected rejection", i)
		}
	}
}
