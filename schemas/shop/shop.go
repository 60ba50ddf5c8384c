// Package shop declares the schema of a small marketplace: customers, seller
// products and items, orders and requests. It registers itself as "shop".
package shop

import (
	"github.com/pgschema/pgdsl/dsl"
	"github.com/pgschema/pgdsl/dsl/sqltype"
	"github.com/pgschema/pgdsl/generator"
)

// Name is the registry name of the schema.
const Name = "shop"

func init() {
	generator.Register(Name, Declare)
}

// columns referenced across tables
type refs struct {
	countryID     *dsl.Column
	customerID    *dsl.Column
	userID        *dsl.Column
	shortLinkID   *dsl.Column
	categoryID    *dsl.Column
	productID     *dsl.Column
	itemUnitID    *dsl.Column
	itemID        *dsl.Column
	orderID       *dsl.Column
	userRequestID *dsl.Column
}

// Declare declares every table and index of the shop schema on c.
func Declare(c *dsl.Context) {
	r := &refs{}
	declareAccounts(c, r)
	declareCatalog(c, r)
	declareOrders(c, r)
	declareRequests(c, r)
}

func declareAccounts(c *dsl.Context, r *refs) {
	notNull := c.NotNull
	primaryKey := c.PrimaryKey

	_, r.countryID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("countries")
		id := idSerial(c)
		col(c, "name", sqltype.Varchar())
		col(c, "country_code", sqltype.Varchar())
		return id
	})

	c.Table(func() {
		c.Name("cities")
		idSerial(c)
		col(c, "name", sqltype.Varchar(), notNull)
		col(c, "name_ascii", sqltype.Varchar())
		col(c, "country_id", sqltype.Int(), ref(c, r.countryID))
	})

	c.Table(func() {
		c.Name("admins")
		idSerial(c)
	})

	tableWithCreatedUpdated(c, func() struct{} {
		c.Name("auth_otp")
		idSerial(c)
		col(c, "phone", sqltype.Varchar())
		col(c, "otp", sqltype.Varchar())
		col(c, "issued_at", sqltype.TimestampWithoutTimeZone())
		col(c, "language", sqltype.Varchar())
		return struct{}{}
	})

	_, r.customerID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("customers")
		id := idSerial(c)
		col(c, "phone_number", sqltype.Varchar())
		return id
	})

	c.Table(func() {
		c.Name("buyers_info")
		col(c, "customer_id", sqltype.Int(), primaryKey, notNull, ref(c, r.customerID))
	})

	_, r.userID = tableWithCreatedUpdated(c, func() *dsl.Column {
		c.Name("users")
		id := idSerial(c)
		col(c, "phone", sqltype.Varchar())
		col(c, "full_name", sqltype.Varchar())
		col(c, "city", sqltype.Varchar())
		col(c, "deleted", sqltype.Bool())
		col(c, "email", sqltype.Text())
		col(c, "utm_term", sqltype.Text())
		col(c, "utm_content", sqltype.Text())
		return id
	})

	c.Table(func() {
		c.Name("statistics")
		col(c, "user_id", sqltype.Int(), notNull, primaryKey, ref(c, r.userID))
		col(c, "visits", sqltype.Int())
		col(c, "date", sqltype.Timestamp())
		createdAt(c)
	})

	c.Table(func() {
		c.Name("oauthusers")
		idSerial(c)
		col(c, "user_id", sqltype.Int())
	})

	tableWithCreatedUpdated(c, func() struct{} {
		c.Name("o_auth_buyers")
		idSerial(c)
		col(c, "customer_id", sqltype.Int(), ref(c, r.customerID))
		col(c, "id_token", sqltype.Varchar())
		col(c, "refresh_token", sqltype.Varchar())
		return struct{}{}
	})

	_, r.shortLinkID = tableWithCreatedUpdated(c, func() *dsl.Column {
		c.Name("short_links")
		id := col(c, "id", sqltype.Varchar(), notNull, primaryKey)
		col(c, "type", sqltype.Varchar())
		return id
	})
}

func declareCatalog(c *dsl.Context, r *refs) {
	notNull := c.NotNull
	primaryKey := c.PrimaryKey

	_, r.categoryID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_product_categories")
		id := idSerial(c)
		col(c, "name", sqltype.Varchar())
		col(c, "image", sqltype.Varchar())
		return id
	})

	var productUserID *dsl.Column
	_, r.productID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_products")
		id := idSerial(c)
		productUserID = col(c, "user_id", sqltype.Int(), ref(c, r.userID))
		col(c, "name", sqltype.Varchar())
		col(c, "description", sqltype.Text())
		col(c, "product_id", sqltype.Text(), ref(c, r.categoryID))
		col(c, "short_link_id", sqltype.Varchar(), ref(c, r.shortLinkID))
		col(c, "delivery_days", sqltype.Text())
		col(c, "delivery_time_from", sqltype.TimeWithTimeZone())
		col(c, "delivery_time_to", sqltype.TimeWithTimeZone())
		col(c, "standard_charge", money())
		col(c, "is_choosable", sqltype.Bool())
		col(c, "deleted", sqltype.Bool())
		return id
	})
	c.IndexOf(func() (string, *dsl.Column) { return "user_products__user_id__idx", productUserID })

	_, r.itemUnitID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_item_units")
		id := idSerial(c)
		col(c, "name", sqltype.Varchar())
		return id
	})

	tableWithCreatedUpdated(c, func() struct{} {
		c.Name("user_products_stats")
		col(c, "product_id", sqltype.Int(), primaryKey, notNull, ref(c, r.productID))
		col(c, "visits", sqltype.Int())
		col(c, "date", sqltype.Date())
		return struct{}{}
	})

	_, r.itemID = dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_items")
		id := idSerial(c)
		col(c, "user_id", sqltype.Int(), ref(c, r.userID))
		col(c, "code", sqltype.Varchar())
		col(c, "unit_id", sqltype.Int(), ref(c, r.itemUnitID))
		col(c, "price", money())
		col(c, "is_listed", sqltype.Bool())
		col(c, "image_urls", sqltype.Varchar())
		col(c, "deleted", sqltype.Bool())
		return id
	})

	_, itemProductID := dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_product_items")
		idSerial(c)
		productID := col(c, "product_id", sqltype.Int(), ref(c, r.productID))
		col(c, "item_id", sqltype.Int(), ref(c, r.itemID))
		col(c, "custom_price", money())
		col(c, "deleted", sqltype.Bool())
		return productID
	})
	c.IndexOf(func() (string, *dsl.Column) { return "user_product_items__product_id__idx", itemProductID })
}

type orderRefs struct {
	id, productID, userID *dsl.Column
}

func declareOrders(c *dsl.Context, r *refs) {
	_, orders := tableWithCreatedUpdated(c, func() orderRefs {
		c.Name("orders")
		var o orderRefs
		o.id = idSerial(c)
		o.productID = col(c, "product_id", sqltype.Int(), ref(c, r.productID))
		o.userID = col(c, "user_id", sqltype.Int(), ref(c, r.userID))
		col(c, "customer_id", sqltype.Int(), ref(c, r.customerID))
		col(c, "link", sqltype.Varchar(), ref(c, r.shortLinkID))
		col(c, "delivery_date", sqltype.Timestamp())
		col(c, "notes", sqltype.Text())
		col(c, "status", sqltype.Varchar())
		col(c, "postcode", sqltype.Varchar())
		col(c, "city", sqltype.Text())
		col(c, "tax_amount", money())
		col(c, "standard_charge", money())
		return o
	})
	r.orderID = orders.id
	c.IndexOf(func() (string, *dsl.Column) { return "orders__product_id__idx", orders.productID })
	c.IndexOf(func() (string, *dsl.Column) { return "orders__user_id__idx", orders.userID })

	_, orderID := dsl.TableWithRefs(c, func() *dsl.Column {
		c.Name("user_order_items")
		idSerial(c)
		orderID := col(c, "order_id", sqltype.Int(), ref(c, r.orderID))
		col(c, "item_id", sqltype.Int(), ref(c, r.itemID))
		col(c, "price", money())
		col(c, "quantity", sqltype.Int())
		return orderID
	})
	c.IndexOf(func() (string, *dsl.Column) { return "user_order_items__order_id__idx", orderID })
}

func declareRequests(c *dsl.Context, r *refs) {
	_, requests := dsl.TableWithRefs(c, func() orderRefs {
		c.Name("user_requests")
		var q orderRefs
		q.id = idSerial(c)
		q.productID = col(c, "product_id", sqltype.Int(), ref(c, r.productID))
		q.userID = col(c, "user_id", sqltype.Int(), ref(c, r.userID))
		col(c, "is_viewed", sqltype.Bool())
		col(c, "phone_number", sqltype.Varchar())
		col(c, "notes", sqltype.Text())
		col(c, "status", sqltype.Varchar())
		return q
	})
	r.userRequestID = requests.id
	c.IndexOf(func() (string, *dsl.Column) { return "user_requests__product_id__idx", requests.productID })
	c.IndexOf(func() (string, *dsl.Column) { return "user_requests__user_id__idx", requests.userID })

	_, requestID := tableWithCreatedUpdated(c, func() *dsl.Column {
		c.Name("user_request_items")
		idSerial(c)
		requestID := col(c, "request_id", sqltype.Int(), ref(c, r.userRequestID))
		col(c, "item_id", sqltype.Int(), ref(c, r.itemID))
		return requestID
	})
	c.IndexOf(func() (string, *dsl.Column) { return "user_request_items__request_id__idx", requestID })
}
