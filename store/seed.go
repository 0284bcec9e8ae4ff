package store

import (
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixtures is the catalog the memory backend boots with and the seed
// command loads into Postgres.
func Fixtures() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Floral Summer Dress", Category: "dresses",
			Description: "Lightweight floral midi dress with a flowing silhouette, perfect for warm days.",
			Price:       59.99, Sizes: models.StringList{"XS", "S", "M", "L"}, Colors: models.StringList{"Rose", "Ivory"},
			Image: "/images/products/floral-summer-dress.jpg", Rating: 4.7, ReviewCount: 128,
			Featured: true, Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.May, 14),
		},
		{
			ID: 2, Name: "Elegant Evening Gown", Category: "dresses",
			Description: "Floor-length satin gown with a fitted bodice and side slit.",
			Price:       149.99, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Emerald", "Black"},
			Image: "/images/products/elegant-evening-gown.jpg", Rating: 4.9, ReviewCount: 86,
			Featured: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.March, 2),
		},
		{
			ID: 3, Name: "Casual Wrap Dress", Category: "dresses",
			Description: "Everyday jersey wrap dress with three-quarter sleeves.",
			Price:       44.50, Sizes: models.StringList{"XS", "S", "M", "L", "XL"}, Colors: models.StringList{"Navy", "Burgundy"},
			Image: "/images/products/casual-wrap-dress.jpg", Rating: 4.3, ReviewCount: 212,
			Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.June, 21),
		},
		{
			ID: 4, Name: "Embroidered Maxi Dress", Category: "dresses",
			Description: "Hand-embroidered maxi dress inspired by traditional tatreez patterns.",
			Price:       189.00, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Black", "Deep Red"},
			Image: "/images/products/embroidered-maxi-dress.jpg", Rating: 5.0, ReviewCount: 41,
			Featured: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.August, 3),
		},
		{
			ID: 5, Name: "Linen Shirt Dress", Category: "dresses",
			Description: "Relaxed button-front shirt dress in breathable washed linen.",
			Price:       72.00, Sizes: models.StringList{"S", "M", "L", "XL"}, Colors: models.StringList{"Sand", "White"},
			Image: "/images/products/linen-shirt-dress.jpg", Rating: 4.1, ReviewCount: 67,
			InStock: false, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.July, 9),
		},
		{
			ID: 6, Name: "Elegant Silk Top", Category: "tops",
			Description: "Silk-blend blouse with a draped neckline and covered buttons.",
			Price:       64.99, Sizes: models.StringList{"XS", "S", "M", "L"}, Colors: models.StringList{"Champagne", "Black"},
			Image: "/images/products/elegant-silk-top.jpg", Rating: 4.6, ReviewCount: 94,
			Featured: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.April, 18),
		},
		{
			ID: 7, Name: "Ribbed Knit Top", Category: "tops",
			Description: "Slim ribbed knit top with a mock neck, an everyday layering piece.",
			Price:       29.99, Sizes: models.StringList{"S", "M", "L", "XL"}, Colors: models.StringList{"Cream", "Olive", "Black"},
			Image: "/images/products/ribbed-knit-top.jpg", Rating: 4.4, ReviewCount: 301,
			Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.June, 30),
		},
		{
			ID: 8, Name: "Oversized Cotton Shirt", Category: "tops",
			Description: "Oversized poplin shirt with dropped shoulders and side vents.",
			Price:       38.00, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"White", "Sky Blue"},
			Image: "/images/products/oversized-cotton-shirt.jpg", Rating: 4.2, ReviewCount: 153,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.May, 25),
		},
		{
			ID: 9, Name: "Embroidered Peasant Blouse", Category: "tops",
			Description: "Cross-stitch embroidered blouse with billowed sleeves.",
			Price:       55.00, Sizes: models.StringList{"XS", "S", "M"}, Colors: models.StringList{"White", "Black"},
			Image: "/images/products/embroidered-peasant-blouse.jpg", Rating: 4.8, ReviewCount: 58,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.August, 11),
		},
		{
			ID: 10, Name: "Satin Camisole", Category: "tops",
			Description: "Bias-cut satin camisole with adjustable straps.",
			Price:       24.50, Sizes: models.StringList{"XS", "S", "M", "L"}, Colors: models.StringList{"Blush", "Silver"},
			Image: "/images/products/satin-camisole.jpg", Rating: 3.9, ReviewCount: 76,
			InStock: false, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.February, 12),
		},
		{
			ID: 11, Name: "Pleated Midi Skirt", Category: "skirts",
			Description: "Accordion-pleated midi skirt with an elastic waistband.",
			Price:       49.99, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Taupe", "Forest"},
			Image: "/images/products/pleated-midi-skirt.jpg", Rating: 4.5, ReviewCount: 119,
			Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.April, 2),
		},
		{
			ID: 12, Name: "Denim A-Line Skirt", Category: "skirts",
			Description: "Classic five-pocket denim skirt hitting just above the knee.",
			Price:       42.00, Sizes: models.StringList{"XS", "S", "M", "L", "XL"}, Colors: models.StringList{"Mid Wash"},
			Image: "/images/products/denim-a-line-skirt.jpg", Rating: 4.0, ReviewCount: 187,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.January, 27),
		},
		{
			ID: 13, Name: "Silk Headscarf", Category: "accessories",
			Description: "Square silk twill scarf with a hand-rolled hem.",
			Price:       34.99, Colors: models.StringList{"Terracotta", "Sage", "Navy"},
			Image: "/images/products/silk-headscarf.jpg", Rating: 4.7, ReviewCount: 223,
			Featured: true, Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.July, 19),
		},
		{
			ID: 14, Name: "Woven Leather Belt", Category: "accessories",
			Description: "Hand-woven leather belt with a brushed gold buckle.",
			Price:       27.00, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Tan", "Black"},
			Image: "/images/products/woven-leather-belt.jpg", Rating: 4.3, ReviewCount: 91,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.March, 15),
		},
		{
			ID: 15, Name: "Beaded Evening Clutch", Category: "accessories",
			Description: "Hand-beaded clutch with a detachable chain strap.",
			Price:       79.00, Colors: models.StringList{"Gold", "Black"},
			Image: "/images/products/beaded-evening-clutch.jpg", Rating: 4.9, ReviewCount: 35,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.August, 24),
		},
		{
			ID: 16, Name: "Tailored Wide-Leg Trousers", Category: "trousers",
			Description: "High-waisted wide-leg trousers with a pressed crease.",
			Price:       68.00, Sizes: models.StringList{"S", "M", "L", "XL"}, Colors: models.StringList{"Charcoal", "Cream"},
			Image: "/images/products/tailored-wide-leg-trousers.jpg", Rating: 4.6, ReviewCount: 142,
			Featured: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.June, 5),
		},
		{
			ID: 17, Name: "Cropped Linen Blazer", Category: "outerwear",
			Description: "Single-breasted cropped blazer in a linen-viscose weave.",
			Price:       98.00, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Oat", "Black"},
			Image: "/images/products/cropped-linen-blazer.jpg", Rating: 4.4, ReviewCount: 64,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.July, 28),
		},
		{
			ID: 18, Name: "Longline Wool Coat", Category: "outerwear",
			Description: "Belted longline coat in a warm wool blend.",
			Price:       179.00, Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Camel", "Grey"},
			Image: "/images/products/longline-wool-coat.jpg", Rating: 4.8, ReviewCount: 52,
			InStock: false, Status: models.ProductStatusActive,
			DateAdded: day(2025, time.November, 19),
		},
		{
			ID: 19, Name: "Velvet Kaftan", Category: "dresses",
			Description: "Velvet kaftan with metallic thread embroidery along the neckline.",
			Price:       129.00, Sizes: models.StringList{"M", "L", "XL"}, Colors: models.StringList{"Midnight", "Plum"},
			Image: "/images/products/velvet-kaftan.jpg", Rating: 4.5, ReviewCount: 29,
			InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.August, 29),
		},
		{
			ID: 20, Name: "Classic Trench Coat", Category: "outerwear",
			Description: "Water-resistant double-breasted trench with a storm flap.",
			Price:       119.00, Sizes: models.StringList{"S", "M", "L", "XL"}, Colors: models.StringList{"Beige"},
			Image: "/images/products/classic-trench-coat.jpg", Rating: 4.7, ReviewCount: 168,
			Bestseller: true, InStock: true, Status: models.ProductStatusActive,
			DateAdded: day(2026, time.February, 28),
		},
	}
}

// PromoFixtures is the closed set of storefront discount codes.
func PromoFixtures() []models.PromoCode {
	return []models.PromoCode{
		{Code: "WELCOME10", Kind: models.PromoPercent, Value: 10, MinSubtotal: 0, Active: true},
		{Code: "SONAA20", Kind: models.PromoPercent, Value: 20, MinSubtotal: 100, Active: true},
		{Code: "SAVE15", Kind: models.PromoFixed, Value: 15, MinSubtotal: 75, Active: true},
		{Code: "FREESHIP", Kind: models.PromoFreeShipping, MinSubtotal: 50, Active: true},
		{Code: "SPRING5", Kind: models.PromoFixed, Value: 5, MinSubtotal: 0, Active: false},
	}
}
