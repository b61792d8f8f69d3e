package catalog

// Sample returns the demo catalog: 40 office and electronics products in
// nine categories.
func Sample() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Dell XPS 15", Description: "Potente laptop con processore Intel i7, 16GB RAM, SSD 512GB", Category: "Elettronica", Price: 1299.99, Quantity: 15},
		{ID: 2, Name: "iPhone 14 Pro", Description: "Smartphone Apple con chip A16 Bionic, fotocamera 48MP", Category: "Elettronica", Price: 1199.00, Quantity: 25},
		{ID: 3, Name: "Samsung Galaxy S23", Description: "Smartphone Android flagship con display AMOLED", Category: "Elettronica", Price: 899.99, Quantity: 30},
		{ID: 4, Name: "MacBook Air M2", Description: "Laptop Apple ultraleggero con chip M2", Category: "Elettronica", Price: 1449.00, Quantity: 12},
		{ID: 5, Name: "iPad Air", Description: "Tablet Apple con display 10.9 pollici", Category: "Elettronica", Price: 649.99, Quantity: 20},
		{ID: 6, Name: "Mouse Logitech MX Master 3", Description: "Mouse wireless ergonomico per produttività", Category: "Accessori", Price: 99.99, Quantity: 50},
		{ID: 7, Name: "Tastiera Meccanica Keychron K2", Description: "Tastiera meccanica wireless retroilluminata", Category: "Accessori", Price: 89.99, Quantity: 35},
		{ID: 8, Name: "Monitor LG 27'' 4K", Description: "Monitor 4K UHD con HDR10", Category: "Elettronica", Price: 449.99, Quantity: 18},
		{ID: 9, Name: "Cuffie Sony WH-1000XM5", Description: "Cuffie wireless con cancellazione del rumore", Category: "Audio", Price: 399.99, Quantity: 22},
		{ID: 10, Name: "Speaker Bluetooth JBL Flip 6", Description: "Speaker portatile impermeabile", Category: "Audio", Price: 129.99, Quantity: 40},
		{ID: 11, Name: "Webcam Logitech C920", Description: "Webcam Full HD 1080p per streaming", Category: "Accessori", Price: 79.99, Quantity: 45},
		{ID: 12, Name: "SSD Samsung 1TB", Description: "SSD NVMe M.2 ad alte prestazioni", Category: "Componenti", Price: 119.99, Quantity: 60},
		{ID: 13, Name: "RAM Corsair Vengeance 32GB", Description: "Memoria DDR4 3200MHz kit 2x16GB", Category: "Componenti", Price: 149.99, Quantity: 28},
		{ID: 14, Name: "Scheda Video RTX 4070", Description: "GPU NVIDIA per gaming e rendering", Category: "Componenti", Price: 649.00, Quantity: 8},
		{ID: 15, Name: "Processore AMD Ryzen 7", Description: "CPU 8 core 16 thread per gaming", Category: "Componenti", Price: 329.99, Quantity: 15},
		{ID: 16, Name: "Zaino Laptop Samsonite", Description: "Zaino porta PC fino a 15.6 pollici", Category: "Accessori", Price: 79.99, Quantity: 55},
		{ID: 17, Name: "Hub USB-C 7-in-1", Description: "Hub multiporta con HDMI, USB 3.0, lettore SD", Category: "Accessori", Price: 49.99, Quantity: 70},
		{ID: 18, Name: "Powerbank Anker 20000mAh", Description: "Batteria esterna ricarica rapida", Category: "Accessori", Price: 59.99, Quantity: 80},
		{ID: 19, Name: "Microfono Blue Yeti", Description: "Microfono USB professionale per podcast", Category: "Audio", Price: 129.99, Quantity: 25},
		{ID: 20, Name: "Smartwatch Apple Watch Series 8", Description: "Smartwatch con GPS e monitoraggio salute", Category: "Elettronica", Price: 449.00, Quantity: 18},
		{ID: 21, Name: "Tablet Samsung Galaxy Tab S8", Description: "Tablet Android 11 pollici con S Pen", Category: "Elettronica", Price: 699.99, Quantity: 14},
		{ID: 22, Name: "Router WiFi 6 TP-Link", Description: "Router mesh dual-band AX3000", Category: "Rete", Price: 149.99, Quantity: 32},
		{ID: 23, Name: "Switch Ethernet 8 porte", Description: "Switch Gigabit non gestito", Category: "Rete", Price: 39.99, Quantity: 45},
		{ID: 24, Name: "Stampante HP LaserJet", Description: "Stampante laser monocromatica WiFi", Category: "Periferiche", Price: 199.99, Quantity: 12},
		{ID: 25, Name: "Scanner Epson Perfection", Description: "Scanner piano ad alta risoluzione", Category: "Periferiche", Price: 259.99, Quantity: 8},
		{ID: 26, Name: "Webcam 4K Razer Kiyo Pro", Description: "Webcam professionale con HDR", Category: "Accessori", Price: 199.99, Quantity: 16},
		{ID: 27, Name: "Sedia Gaming DXRacer", Description: "Sedia ergonomica per gaming con supporto lombare", Category: "Arredamento", Price: 349.99, Quantity: 10},
		{ID: 28, Name: "Scrivania Regolabile", Description: "Scrivania elettrica sit-stand 120x60cm", Category: "Arredamento", Price: 449.99, Quantity: 6},
		{ID: 29, Name: "Lampada LED da Scrivania", Description: "Lampada dimmerabile con ricarica wireless", Category: "Arredamento", Price: 59.99, Quantity: 42},
		{ID: 30, Name: "Supporto Laptop Elevato", Description: "Stand in alluminio regolabile", Category: "Accessori", Price: 39.99, Quantity: 65},
		{ID: 31, Name: "Cable Management Kit", Description: "Kit organizzatore cavi per scrivania", Category: "Accessori", Price: 24.99, Quantity: 90},
		{ID: 32, Name: "Mousepad XXL Gaming", Description: "Tappetino mouse 90x40cm antiscivolo", Category: "Accessori", Price: 29.99, Quantity: 75},
		{ID: 33, Name: "Luci LED RGB Philips Hue", Description: "Striscia LED smart 2 metri", Category: "Smart Home", Price: 79.99, Quantity: 35},
		{ID: 34, Name: "Telecamera Sicurezza WiFi", Description: "Telecamera IP 1080p con visione notturna", Category: "Smart Home", Price: 89.99, Quantity: 28},
		{ID: 35, Name: "Smart Plug TP-Link", Description: "Presa intelligente WiFi con monitoraggio energia", Category: "Smart Home", Price: 19.99, Quantity: 100},
		{ID: 36, Name: "Lettore NAS 2-Bay", Description: "Network Attached Storage 8TB", Category: "Storage", Price: 299.99, Quantity: 12},
		{ID: 37, Name: "Hard Disk Esterno 4TB", Description: "HDD USB 3.0 portatile", Category: "Storage", Price: 99.99, Quantity: 40},
		{ID: 38, Name: "Chiavetta USB 128GB", Description: "Pendrive USB 3.1 veloce", Category: "Storage", Price: 24.99, Quantity: 120},
		{ID: 39, Name: "Adattatore USB-C a HDMI", Description: "Convertitore 4K 60Hz", Category: "Accessori", Price: 19.99, Quantity: 85},
		{ID: 40, Name: "Cavo HDMI 2.1 3m", Description: "Cavo ultra high speed 8K", Category: "Accessori", Price: 29.99, Quantity: 95},
	}
}
