// Package graphql defines the external GraphQL surface: the schema,
// the per-operation resolvers and the HTTP handler that executes
// documents. Resolvers return plain maps shaped like the output types;
// every mutation payload carries at least {ok, error}.
package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/faults"
)

// ─── Output object types ─────────────────────────────────────────────────────

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"verified":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt": &graphql.Field{Type: graphql.String},
	},
})

var dishChoiceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DishChoice",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"extra": &graphql.Field{Type: graphql.Int},
	},
})

var dishOptionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DishOption",
	Fields: graphql.Fields{
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"extra":   &graphql.Field{Type: graphql.Int},
		"choices": &graphql.Field{Type: graphql.NewList(dishChoiceType)},
	},
})

var dishType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Dish",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"description": &graphql.Field{Type: graphql.String},
		"photo":       &graphql.Field{Type: graphql.String},
		"options":     &graphql.Field{Type: graphql.NewList(dishOptionType)},
	},
})

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"slug":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"coverImage":      &graphql.Field{Type: graphql.String},
		"restaurantCount": &graphql.Field{Type: graphql.Int},
	},
})

var restaurantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Restaurant",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"address":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"coverImage": &graphql.Field{Type: graphql.String},
		"isPromoted": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"category":   &graphql.Field{Type: categoryType},
		"menu":       &graphql.Field{Type: graphql.NewList(dishType)},
	},
})

var orderItemOptionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItemOption",
	Fields: graphql.Fields{
		"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"choice": &graphql.Field{Type: graphql.String},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"dishId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"options": &graphql.Field{Type: graphql.NewList(orderItemOptionType)},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"total":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"customerId":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"driverId":     &graphql.Field{Type: graphql.Int},
		"restaurantId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"items":        &graphql.Field{Type: graphql.NewList(orderItemType)},
		"createdAt":    &graphql.Field{Type: graphql.String},
	},
})

var paymentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Payment",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"transactionId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"restaurantId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"createdAt":     &graphql.Field{Type: graphql.String},
	},
})

// ─── Input object types ──────────────────────────────────────────────────────

var dishChoiceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DishChoiceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"extra": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var dishOptionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DishOptionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"extra":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"choices": &graphql.InputObjectFieldConfig{Type: graphql.NewList(dishChoiceInput)},
	},
})

var orderItemOptionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemOptionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"choice": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"dishId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"options": &graphql.InputObjectFieldConfig{Type: graphql.NewList(orderItemOptionInput)},
	},
})

// ─── Envelope helpers ────────────────────────────────────────────────────────

// result builds an envelope object type named <Name>Result with ok and
// error plus the operation's own fields.
func result(name string, extra graphql.Fields) *graphql.Object {
	fields := graphql.Fields{
		"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"error": &graphql.Field{Type: graphql.String},
	}
	for k, v := range extra {
		fields[k] = v
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name + "Result", Fields: fields})
}

// ok wraps a successful payload in the envelope shape.
func ok(extra map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{"ok": true, "error": nil}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// fail maps a domain failure to the envelope shape.
func fail(err *faults.Error) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": err.Public()}
}

// ─── Model → map conversion ──────────────────────────────────────────────────

func userMap(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"email":     u.Email,
		"role":      u.Role,
		"verified":  u.Verified,
		"createdAt": u.CreatedAt.Format(time.RFC3339),
	}
}

func categoryMap(c *models.Category) map[string]interface{} {
	return map[string]interface{}{
		"id":         c.ID,
		"name":       c.Name,
		"slug":       c.Slug,
		"coverImage": c.CoverImage,
	}
}

func categoryCountMap(c services.CategoryWithCount) map[string]interface{} {
	out := categoryMap(&c.Category)
	out["restaurantCount"] = c.RestaurantCount
	return out
}

func dishMap(d *models.Dish) map[string]interface{} {
	options := make([]map[string]interface{}, 0, len(d.Options))
	for _, opt := range d.Options {
		choices := make([]map[string]interface{}, 0, len(opt.Choices))
		for _, ch := range opt.Choices {
			choices = append(choices, map[string]interface{}{"name": ch.Name, "extra": ch.Extra})
		}
		options = append(options, map[string]interface{}{
			"name":    opt.Name,
			"extra":   opt.Extra,
			"choices": choices,
		})
	}
	return map[string]interface{}{
		"id":          d.ID,
		"name":        d.Name,
		"price":       d.Price,
		"description": d.Description,
		"photo":       d.Photo,
		"options":     options,
	}
}

func restaurantMap(r *models.Restaurant) map[string]interface{} {
	out := map[string]interface{}{
		"id":         r.ID,
		"name":       r.Name,
		"address":    r.Address,
		"coverImage": r.CoverImage,
		"isPromoted": r.IsPromoted,
	}
	if r.Category.ID != 0 {
		out["category"] = categoryMap(&r.Category)
	}
	if r.Dishes != nil {
		menu := make([]map[string]interface{}, 0, len(r.Dishes))
		for i := range r.Dishes {
			menu = append(menu, dishMap(&r.Dishes[i]))
		}
		out["menu"] = menu
	}
	return out
}

func restaurantMaps(rs []models.Restaurant) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rs))
	for i := range rs {
		out = append(out, restaurantMap(&rs[i]))
	}
	return out
}

func orderMap(o *models.Order) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(o.Items))
	for _, item := range o.Items {
		selections := make([]map[string]interface{}, 0, len(item.Options))
		for _, sel := range item.Options {
			selections = append(selections, map[string]interface{}{"name": sel.Name, "choice": sel.Choice})
		}
		items = append(items, map[string]interface{}{"dishId": item.DishID, "options": selections})
	}
	out := map[string]interface{}{
		"id":           o.ID,
		"status":       o.Status,
		"total":        o.Total,
		"customerId":   o.CustomerID,
		"restaurantId": o.RestaurantID,
		"items":        items,
		"createdAt":    o.CreatedAt.Format(time.RFC3339),
	}
	if o.DriverID != nil {
		out["driverId"] = *o.DriverID
	}
	return out
}

func orderMaps(os []models.Order) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(os))
	for i := range os {
		out = append(out, orderMap(&os[i]))
	}
	return out
}

func paymentMap(p *models.Payment) map[string]interface{} {
	return map[string]interface{}{
		"id":            p.ID,
		"transactionId": p.TransactionID,
		"restaurantId":  p.RestaurantID,
		"createdAt":     p.CreatedAt.Format(time.RFC3339),
	}
}

// ─── Argument decoding helpers ───────────────────────────────────────────────

func argString(p graphql.ResolveParams, key string) string {
	if v, found := p.Args[key].(string); found {
		return v
	}
	return ""
}

func argInt(p graphql.ResolveParams, key string) int {
	if v, found := p.Args[key].(int); found {
		return v
	}
	return 0
}

func argUint(p graphql.ResolveParams, key string) uint {
	return uint(argInt(p, key))
}

func decodeDishOptions(raw interface{}) []models.DishOption {
	list, found := raw.([]interface{})
	if !found {
		return nil
	}
	options := make([]models.DishOption, 0, len(list))
	for _, item := range list {
		m, found := item.(map[string]interface{})
		if !found {
			continue
		}
		opt := models.DishOption{}
		opt.Name, _ = m["name"].(string)
		opt.Extra, _ = m["extra"].(int)
		if choices, found := m["choices"].([]interface{}); found {
			for _, c := range choices {
				cm, found := c.(map[string]interface{})
				if !found {
					continue
				}
				choice := models.DishChoice{}
				choice.Name, _ = cm["name"].(string)
				choice.Extra, _ = cm["extra"].(int)
				opt.Choices = append(opt.Choices, choice)
			}
		}
		options = append(options, opt)
	}
	return options
}

func decodeOrderItems(raw interface{}) []services.OrderItemInput {
	list, found := raw.([]interface{})
	if !found {
		return nil
	}
	items := make([]services.OrderItemInput, 0, len(list))
	for _, item := range list {
		m, found := item.(map[string]interface{})
		if !found {
			continue
		}
		in := services.OrderItemInput{}
		if id, found := m["dishId"].(int); found {
			in.DishID = uint(id)
		}
		if selections, found := m["options"].([]interface{}); found {
			for _, s := range selections {
				sm, found := s.(map[string]interface{})
				if !found {
					continue
				}
				sel := models.OrderItemOption{}
				sel.Name, _ = sm["name"].(string)
				sel.Choice, _ = sm["choice"].(string)
				in.Options = append(in.Options, sel)
			}
		}
		items = append(items, in)
	}
	return items
}
