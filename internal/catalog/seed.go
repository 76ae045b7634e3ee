package catalog

import "github.com/shopspring/decimal"

func seedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Pro Laptop X1",
			Description: "The ultimate laptop for professionals. Powerful, sleek, and lightweight.",
			Price:       decimal.RequireFromString("1499.99"),
			Category:    "Electronics",
			ImageID:     "prod1",
		},
		{
			ID:          "2",
			Name:        "SoundWave Headphones",
			Description: "Immersive sound quality with noise-cancellation. All-day comfort.",
			Price:       decimal.RequireFromString("249.99"),
			Category:    "Electronics",
			ImageID:     "prod2",
		},
		{
			ID:          "3",
			Name:        "Connect Smartphone",
			Description: "Stay connected with our latest smartphone. Brilliant display and a pro-grade camera.",
			Price:       decimal.RequireFromString("999.99"),
			Category:    "Electronics",
			ImageID:     "prod3",
		},
		{
			ID:          "4",
			Name:        "The Art of Code",
			Description: "A deep dive into the beauty and structure of software design.",
			Price:       decimal.RequireFromString("49.99"),
			Category:    "Books",
			ImageID:     "prod4",
		},
		{
			ID:          "5",
			Name:        "Timeless Classics Collection",
			Description: "A set of five must-read classic novels in beautiful hardcover editions.",
			Price:       decimal.RequireFromString("129.99"),
			Category:    "Books",
			ImageID:     "prod5",
		},
		{
			ID:          "6",
			Name:        "Galaxy Adventures Comic",
			Description: "The first issue of the epic space saga, Galaxy Adventures. Full color.",
			Price:       decimal.RequireFromString("9.99"),
			Category:    "Books",
			ImageID:     "prod6",
		},
		{
			ID:          "7",
			Name:        "Classic Blue T-Shirt",
			Description: "A high-quality, 100% cotton t-shirt for everyday comfort and style.",
			Price:       decimal.RequireFromString("29.99"),
			Category:    "Apparel",
			ImageID:     "prod7",
		},
		{
			ID:          "8",
			Name:        "Urban Denim Jacket",
			Description: "A timeless denim jacket that adds a touch of cool to any outfit.",
			Price:       decimal.RequireFromString("89.99"),
			Category:    "Apparel",
			ImageID:     "prod8",
		},
		{
			ID:          "9",
			Name:        "City-Trek Sneakers",
			Description: "Comfortable and stylish sneakers perfect for urban exploration.",
			Price:       decimal.RequireFromString("119.99"),
			Category:    "Apparel",
			ImageID:     "prod9",
		},
		{
			ID:          "10",
			Name:        "Minimalist Ceramic Mug",
			Description: "Start your day with a sip from this beautifully crafted ceramic mug.",
			Price:       decimal.RequireFromString("19.99"),
			Category:    "Home Goods",
			ImageID:     "prod10",
		},
		{
			ID:          "11",
			Name:        "Velvet Throw Pillows",
			Description: "Add a touch of elegance to your living space with these soft velvet pillows. Set of two.",
			Price:       decimal.RequireFromString("59.99"),
			Category:    "Home Goods",
			ImageID:     "prod11",
		},
		{
			ID:          "12",
			Name:        "Modern LED Desk Lamp",
			Description: "Illuminate your workspace with this sleek and adjustable LED desk lamp.",
			Price:       decimal.RequireFromString("79.99"),
			Category:    "Home Goods",
			ImageID:     "prod12",
		},
		{
			ID:          "13",
			Name:        "Chrono Smartwatch",
			Description: "Track your fitness and stay connected with the stylish Chrono Smartwatch.",
			Price:       decimal.RequireFromString("349.99"),
			Category:    "Electronics",
			ImageID:     "prod13",
		},
		{
			ID:          "14",
			Name:        "The Dragon's Heir",
			Description: "An epic fantasy novel of magic, war, and destiny. A must-read for fans of the genre.",
			Price:       decimal.RequireFromString("24.99"),
			Category:    "Books",
			ImageID:     "prod14",
		},
		{
			ID:          "15",
			Name:        "Cozy Wool Sweater",
			Description: "Stay warm and stylish in this 100% merino wool sweater.",
			Price:       decimal.RequireFromString("99.99"),
			Category:    "Apparel",
			ImageID:     "prod15",
		},
		{
			ID:          "16",
			Name:        "Scented Soy Candle",
			Description: "Create a relaxing ambiance with our lavender and vanilla scented soy candle.",
			Price:       decimal.RequireFromString("24.99"),
			Category:    "Home Goods",
			ImageID:     "prod16",
		},
	}
}
