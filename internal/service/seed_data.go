package service

import "hermesoftware/byklab-api/internal/domain"

// seedExercises is the starter exercise catalog. Ids are assigned per seed run.
var seedExercises = []domain.Exercise{
	{
		Name:        "Bench Press",
		MuscleGroup: "Göğüs",
		Difficulty:  "Orta",
		Duration:    "3x12",
		Description: "Göğüs kaslarını geliştiren temel hareket",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
	},
	{
		Name:        "Deadlift",
		MuscleGroup: "Sırt",
		Difficulty:  "İleri",
		Duration:    "4x8",
		Description: "Tüm vücudu çalıştıran compound hareket",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?w=400",
	},
	{
		Name:        "Squat",
		MuscleGroup: "Bacak",
		Difficulty:  "Orta",
		Duration:    "4x10",
		Description: "Bacak kaslarını güçlendiren temel hareket",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1574680096145-d05b474e2155?w=400",
	},
	{
		Name:        "Shoulder Press",
		MuscleGroup: "Omuz",
		Difficulty:  "Başlangıç",
		Duration:    "3x15",
		Description: "Omuz kaslarını şekillendiren hareket",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=400",
	},
	{
		Name:        "Bicep Curl",
		MuscleGroup: "Kol",
		Difficulty:  "Başlangıç",
		Duration:    "3x12",
		Description: "Biceps kaslarını geliştiren izolasyon hareketi",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=400",
	},
	{
		Name:        "Plank",
		MuscleGroup: "Karın",
		Difficulty:  "Başlangıç",
		Duration:    "3x60sn",
		Description: "Core kaslarını güçlendiren statik hareket",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		Thumbnail:   "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
	},
}

// seedBlogPosts is the starter blog catalog. Ids and published_at are
// assigned per seed run.
var seedBlogPosts = []domain.BlogPost{
	{
		Title:    "Spor Biliminin Temelleri",
		Excerpt:  "Modern spor bilimi nasıl çalışır? Biyomekanik, fizyoloji ve performans optimizasyonunun temellerini keşfedin.",
		Content:  "# Spor Biliminin Temelleri\n\nSpor bilimi, atletik performansı optimize etmek için fizyoloji, biyomekanik, psikoloji ve beslenme bilimlerini birleştirir.\n\n## Biyomekanik Analiz\n\nHareket paternlerinin analizi, yaralanmaları önlemeye ve performansı artırmaya yardımcı olur.\n\n## Fizyolojik Adaptasyonlar\n\nDüzenli antrenman, kas liflerinde, kardiyovasküler sistemde ve sinir sisteminde adaptasyonlara yol açar.",
		Image:    "https://images.unsplash.com/photo-1576678927484-cc907957088c?w=800",
		Author:   "Dr. Ahmet Yılmaz",
		ReadTime: "8 dakika",
	},
	{
		Title:    "Kas Aktivasyonu ve EMG Analizi",
		Excerpt:  "Elektromiyografi (EMG) ile kas aktivasyonunu nasıl ölçüyoruz? Bilimsel yaklaşımlar ve pratik uygulamalar.",
		Content:  "# Kas Aktivasyonu ve EMG Analizi\n\nEMG, kas kasılması sırasında üretilen elektriksel aktiviteyi ölçer.\n\n## Uygulama Alanları\n\n- Hareket analizi\n- Rehabilitasyon takibi\n- Antrenman optimizasyonu\n\n## Yorumlama\n\nEMG sinyalleri, hangi kasların ne zaman ve ne kadar aktif olduğunu gösterir.",
		Image:    "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=800",
		Author:   "Prof. Ayşe Demir",
		ReadTime: "6 dakika",
	},
	{
		Title:    "Fizyoterapi ve Biyomekanik",
		Excerpt:  "Yaralanma sonrası iyileşme sürecinde biyomekaniğin rolü nedir? Kanıta dayalı fizyoterapi yaklaşımları.",
		Content:  "# Fizyoterapi ve Biyomekanik\n\nFizyoterapi, hareket bozukluklarını düzeltmek ve fonksiyonu restore etmek için biyomekanik prensipleri kullanır.\n\n## Hareket Analizi\n\nYanlış hareket paternleri tespit edilir ve düzeltilir.\n\n## Rehabilitasyon Protokolleri\n\nBilimsel kanıtlara dayalı, kademeli yükleme programları uygulanır.",
		Image:    "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=800",
		Author:   "Ft. Mehmet Kaya",
		ReadTime: "10 dakika",
	},
	{
		Title:    "Performans Optimizasyonu",
		Excerpt:  "Bilimsel yöntemlerle performansınızı nasıl maksimize edebilirsiniz? Data-driven antrenman yaklaşımları.",
		Content:  "# Performans Optimizasyonu\n\nModern teknoloji ve bilimsel metotlar ile performans artışı sağlanabilir.\n\n## Veri Toplama\n\nGiyilebilir teknolojiler ve laboratuvar testleri ile objektif veriler elde edilir.\n\n## Analiz ve Uygulama\n\nVeriler analiz edilerek kişiye özel antrenman programları oluşturulur.",
		Image:    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
		Author:   "Dr. Zeynep Öztürk",
		ReadTime: "7 dakika",
	},
}
