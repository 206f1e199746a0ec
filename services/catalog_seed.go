package services

import "nutriscan/models"

// catalogSeed is the public food catalog loaded by cmd/seed.
var catalogSeed = []models.FoodItem{
	{Name: "Nasi Goreng", Brand: "Homemade", ServingSize: "1 porsi (200g)", Calories: 350, Protein: 12, Carbs: 45, Fats: 14, Type: "local", Image: "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400"},
	{Name: "Mie Goreng", Brand: "Homemade", ServingSize: "1 porsi (180g)", Calories: 380, Protein: 10, Carbs: 52, Fats: 15, Type: "local", Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400"},
	{Name: "Sate Ayam", Brand: "Warung Sate", ServingSize: "10 tusuk", Calories: 450, Protein: 35, Carbs: 15, Fats: 28, Type: "local", Image: "https://images.unsplash.com/photo-1529563021893-cc83c992d75d?w=400"},
	{Name: "Rendang Daging", Brand: "Padang", ServingSize: "100g", Calories: 468, Protein: 30, Carbs: 6, Fats: 38, Type: "local", Image: "https://images.unsplash.com/photo-1562565651-7d4948f339eb?w=400"},
	{Name: "Gado-Gado", Brand: "Homemade", ServingSize: "1 porsi (250g)", Calories: 320, Protein: 14, Carbs: 28, Fats: 18, Type: "local", Image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400"},
	{Name: "Ayam Goreng", Brand: "Homemade", ServingSize: "1 potong (150g)", Calories: 320, Protein: 28, Carbs: 8, Fats: 20, Type: "local", Image: "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=400"},
	{Name: "Bakso Sapi", Brand: "Warung Bakso", ServingSize: "1 mangkok", Calories: 280, Protein: 18, Carbs: 32, Fats: 10, Type: "local", Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400"},
	{Name: "Soto Ayam", Brand: "Homemade", ServingSize: "1 mangkok (350ml)", Calories: 250, Protein: 20, Carbs: 22, Fats: 10, Type: "local", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{Name: "Nasi Padang", Brand: "Padang", ServingSize: "1 porsi", Calories: 550, Protein: 25, Carbs: 58, Fats: 25, Type: "local", Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400"},
	{Name: "Pecel Lele", Brand: "Warung Lele", ServingSize: "1 porsi", Calories: 420, Protein: 28, Carbs: 35, Fats: 22, Type: "local", Image: "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=400"},
	{Name: "Tempe Goreng", Brand: "Homemade", ServingSize: "5 potong (100g)", Calories: 200, Protein: 18, Carbs: 12, Fats: 10, Type: "local", Image: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400"},
	{Name: "Tahu Goreng", Brand: "Homemade", ServingSize: "5 potong (100g)", Calories: 180, Protein: 15, Carbs: 8, Fats: 12, Type: "local", Image: "https://images.unsplash.com/photo-1546069901-d5bfd2cbfb1f?w=400"},
	{Name: "Nasi Putih", Brand: "Homemade", ServingSize: "1 porsi (150g)", Calories: 195, Protein: 4, Carbs: 44, Fats: 0.4, Type: "local", Image: "https://images.unsplash.com/photo-1516684732162-798a0062be99?w=400"},
	{Name: "Bubur Ayam", Brand: "Warung Bubur", ServingSize: "1 mangkok", Calories: 280, Protein: 15, Carbs: 38, Fats: 8, Type: "local", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{Name: "Rawon", Brand: "Homemade", ServingSize: "1 mangkok", Calories: 380, Protein: 28, Carbs: 25, Fats: 20, Type: "local", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{Name: "Big Mac", Brand: "McDonald's", ServingSize: "1 burger", Calories: 540, Protein: 25, Carbs: 45, Fats: 28, Type: "fastfood", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400"},
	{Name: "Whopper", Brand: "Burger King", ServingSize: "1 burger", Calories: 657, Protein: 28, Carbs: 49, Fats: 40, Type: "fastfood", Image: "https://images.unsplash.com/photo-1553979459-d2229ba7433b?w=400"},
	{Name: "Crispy Chicken", Brand: "KFC", ServingSize: "2 potong", Calories: 490, Protein: 38, Carbs: 16, Fats: 32, Type: "fastfood", Image: "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400"},
	{Name: "McFlurry Oreo", Brand: "McDonald's", ServingSize: "1 cup", Calories: 340, Protein: 8, Carbs: 52, Fats: 12, Type: "fastfood", Image: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400"},
	{Name: "French Fries Large", Brand: "McDonald's", ServingSize: "Large", Calories: 490, Protein: 7, Carbs: 66, Fats: 23, Type: "fastfood", Image: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400"},
	{Name: "Pizza Pepperoni", Brand: "Pizza Hut", ServingSize: "2 slices", Calories: 520, Protein: 22, Carbs: 54, Fats: 24, Type: "fastfood", Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400"},
	{Name: "Chicken Teriyaki Sub", Brand: "Subway", ServingSize: "6 inch", Calories: 370, Protein: 26, Carbs: 46, Fats: 10, Type: "fastfood", Image: "https://images.unsplash.com/photo-1554433607-66b5efe9d304?w=400"},
	{Name: "Chitato Original", Brand: "Chitato", ServingSize: "68g", Calories: 380, Protein: 4, Carbs: 42, Fats: 22, Type: "snack", Image: "https://images.unsplash.com/photo-1568702846914-96b305d2ebb7?w=400"},
	{Name: "Oreo Original", Brand: "Oreo", ServingSize: "6 keping (51g)", Calories: 250, Protein: 2, Carbs: 36, Fats: 11, Type: "snack", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400"},
	{Name: "Indomie Goreng", Brand: "Indomie", ServingSize: "1 bungkus (85g)", Calories: 380, Protein: 8, Carbs: 52, Fats: 16, Type: "snack", Image: "https://images.unsplash.com/photo-1612929633738-8fe44f7ec841?w=400"},
	{Name: "Pop Mie", Brand: "Indofood", ServingSize: "1 cup (75g)", Calories: 310, Protein: 6, Carbs: 42, Fats: 14, Type: "snack", Image: "https://images.unsplash.com/photo-1612929633738-8fe44f7ec841?w=400"},
	{Name: "Tango Wafer Coklat", Brand: "Tango", ServingSize: "1 pack (42g)", Calories: 210, Protein: 2, Carbs: 28, Fats: 10, Type: "snack", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400"},
	{Name: "Good Day Cappuccino", Brand: "Good Day", ServingSize: "1 sachet (25g)", Calories: 100, Protein: 2, Carbs: 18, Fats: 2, Type: "snack", Image: "https://images.unsplash.com/photo-1497515114583-f61414b98bac?w=400"},
	{Name: "Salad Sayur", Brand: "Homemade", ServingSize: "1 porsi (200g)", Calories: 120, Protein: 4, Carbs: 18, Fats: 5, Type: "local", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400"},
	{Name: "Oatmeal", Brand: "Quaker", ServingSize: "1 cup (40g)", Calories: 150, Protein: 5, Carbs: 27, Fats: 3, Type: "local", Image: "https://images.unsplash.com/photo-1517673400267-0251440c45dc?w=400"},
	{Name: "Greek Yogurt", Brand: "Heavenly Blush", ServingSize: "1 cup (150g)", Calories: 130, Protein: 15, Carbs: 8, Fats: 4, Type: "local", Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400"},
	{Name: "Telur Rebus", Brand: "Homemade", ServingSize: "2 butir", Calories: 155, Protein: 13, Carbs: 1, Fats: 11, Type: "local", Image: "https://images.unsplash.com/photo-1518569656558-1f25e69d93d7?w=400"},
	{Name: "Pisang", Brand: "Buah Segar", ServingSize: "1 buah (120g)", Calories: 105, Protein: 1, Carbs: 27, Fats: 0.4, Type: "local", Image: "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400"},
	{Name: "Alpukat", Brand: "Buah Segar", ServingSize: "1 buah (150g)", Calories: 240, Protein: 3, Carbs: 12, Fats: 22, Type: "local", Image: "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400"},
	{Name: "Dada Ayam Panggang", Brand: "Homemade", ServingSize: "100g", Calories: 165, Protein: 31, Carbs: 0, Fats: 4, Type: "local", Image: "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=400"},
	{Name: "Salmon Panggang", Brand: "Homemade", ServingSize: "100g", Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Type: "local", Image: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400"},
	{Name: "Es Teh Manis", Brand: "Homemade", ServingSize: "1 gelas (300ml)", Calories: 80, Protein: 0, Carbs: 20, Fats: 0, Type: "local", Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400"},
	{Name: "Kopi Susu", Brand: "Kopi Kenangan", ServingSize: "1 cup (350ml)", Calories: 180, Protein: 5, Carbs: 28, Fats: 6, Type: "local", Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400"},
	{Name: "Jus Jeruk", Brand: "Homemade", ServingSize: "1 gelas (250ml)", Calories: 110, Protein: 2, Carbs: 26, Fats: 0, Type: "local", Image: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
	{Name: "Susu Full Cream", Brand: "Ultra Milk", ServingSize: "1 gelas (250ml)", Calories: 150, Protein: 8, Carbs: 12, Fats: 8, Type: "local", Image: "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=400"},
	{Name: "Air Kelapa", Brand: "Buah Segar", ServingSize: "1 gelas (240ml)", Calories: 46, Protein: 2, Carbs: 9, Fats: 0, Type: "local", Image: "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=400"},
}
