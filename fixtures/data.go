package fixtures

import "github.com/shopspring/decimal"

func usd(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var opportunities = []Opportunity{
	{Title: "Agua Limpia Andina", Sector: "Agua", ROI: "14%", Goal: usd(80000), Raised: usd(30000)},
	{Title: "EduTech Para Todos", Sector: "Educación", ROI: "18%", Goal: usd(120000), Raised: usd(95000)},
	{Title: "Reciclaje Urbano", Sector: "Medio Ambiente", ROI: "16%", Goal: usd(50000), Raised: usd(10000)},
	{Title: "Energía Solar Comunitaria", Sector: "Energía", ROI: "12%", Goal: usd(150000), Raised: usd(60000)},
	{Title: "Salud Móvil Rural", Sector: "Salud", ROI: "20%", Goal: usd(90000), Raised: usd(45000)},
}

// sector filter options offered on the investor dashboard
var sectorOptions = []string{"agricultura", "educacion", "energia", "salud", "tecnologia"}

var investments = []Investment{
	{Title: "Agricultura Sostenible", Status: InvestmentActive, Amount: usd(25000), ROI: 18, Impact: "300 familias"},
	{Title: "Educación Rural", Status: InvestmentActive, Amount: usd(40000), ROI: 15, Impact: "1,200 niños"},
	{Title: "Energía Solar", Status: InvestmentCompleted, Amount: usd(15000), ROI: 22, Impact: "50 comunidades"},
	{Title: "App Salud Mental", Status: InvestmentActive, Amount: usd(40500), ROI: 12, Impact: "10,000 usuarios"},
	{Title: "Reciclaje Urbano", Status: InvestmentCompleted, Amount: usd(20000), ROI: 16, Impact: "5 toneladas de residuos"},
	{Title: "Agua Limpia Andina", Status: InvestmentActive, Amount: usd(20000), ROI: 14, Impact: "2,000 personas"},
}

var investorCourses = []Course{
	{Title: "Due Diligence para Inversores", Duration: "3h", Level: "Intermedio", Progress: 0, Lessons: 8},
	{Title: "Estructuración de Portafolios de Impacto", Duration: "4h", Level: "Avanzado", Progress: 20, Lessons: 10},
	{Title: "Análisis de Riesgo y Retorno", Duration: "2.5h", Level: "Intermedio", Progress: 0, Lessons: 6},
	{Title: "Métricas de Impacto para Inversores", Duration: "3h", Level: "Básico", Progress: 50, Lessons: 7},
	{Title: "Tendencias en Inversión de Impacto", Duration: "2h", Level: "Básico", Progress: 100, Lessons: 5},
	{Title: "Evaluación de Proyectos Sociales", Duration: "3.5h", Level: "Avanzado", Progress: 0, Lessons: 9},
}

var entrepreneurCourses = []Course{
	{Title: "Validación de Mercado para Emprendedores", Duration: "3h", Level: "Básico", Progress: 0, Lessons: 9},
	{Title: "Modelo de Negocio y Proyección Financiera", Duration: "4h", Level: "Intermedio", Progress: 30, Lessons: 12},
	{Title: "Cómo Preparar un Pitch para Inversores", Duration: "2h", Level: "Básico", Progress: 60, Lessons: 5},
	{Title: "Medición de Impacto Social (Emprendedores)", Duration: "3h", Level: "Intermedio", Progress: 0, Lessons: 8},
	{Title: "Estrategias de Crecimiento Sostenible", Duration: "2.5h", Level: "Avanzado", Progress: 100, Lessons: 6},
	{Title: "Acceso a Financiamiento para Emprendedores", Duration: "3.5h", Level: "Intermedio", Progress: 0, Lessons: 10},
}

var recommendedCourses = []Course{
	{Title: "Finanzas para Emprendedores", Duration: "4h", Progress: 0},
	{Title: "Pitch Efectivo", Duration: "2h", Progress: 60},
	{Title: "Medición de Impacto Social", Duration: "3h", Progress: 100},
}

var forumCategories = []string{"Todos", "Inversión", "Emprendimiento", "Impacto Social", "Networking"}

var forumPosts = []ForumPost{
	{
		ID: 1, Author: "María González", Role: "Emprendedora", Avatar: "MG",
		Title:    "¿Cómo medir el impacto social de mi proyecto?",
		Content:  "Estoy desarrollando un proyecto de educación rural y necesito ayuda para establecer métricas claras de impacto social...",
		Category: "Impacto Social", Likes: 24, Comments: 12, Time: "Hace 2 horas",
	},
	{
		ID: 2, Author: "Carlos Ruiz", Role: "Inversor", Avatar: "CR",
		Title:    "Experiencias invirtiendo en agricultura sostenible",
		Content:  "Después de 3 años invirtiendo en proyectos agrícolas, quiero compartir algunos aprendizajes clave...",
		Category: "Inversión", Likes: 45, Comments: 28, Time: "Hace 5 horas", IsLiked: true,
	},
	{
		ID: 3, Author: "Ana Martínez", Role: "Emprendedora", Avatar: "AM",
		Title:    "Busco mentor para proyecto de energía solar",
		Content:  "Tengo un proyecto de energía solar comunitaria en fase inicial y busco un mentor con experiencia...",
		Category: "Networking", Likes: 18, Comments: 7, Time: "Hace 1 día",
	},
	{
		ID: 4, Author: "Luis Fernández", Role: "Inversor", Avatar: "LF",
		Title:    "Diversificación de portafolio de impacto",
		Content:  "¿Qué estrategias usan para diversificar su portafolio manteniendo el foco en impacto social?",
		Category: "Inversión", Likes: 31, Comments: 19, Time: "Hace 2 días",
	},
	{
		ID: 5, Author: "Sofía Ramírez", Role: "Emprendedora", Avatar: "SR",
		Title:    "Compartiendo recursos: plantillas financieras",
		Content:  "He creado plantillas de proyección financiera que me ayudaron mucho. Las comparto con la comunidad...",
		Category: "Emprendimiento", Likes: 67, Comments: 34, Time: "Hace 3 días", IsLiked: true,
	},
	{
		ID: 6, Author: "Jorge Pérez", Role: "Inversor", Avatar: "JP",
		Title:    "Due diligence: checklist completo",
		Content:  "Después de evaluar más de 50 proyectos, aquí mi checklist definitivo para due diligence...",
		Category: "Inversión", Likes: 89, Comments: 41, Time: "Hace 1 semana", IsLiked: true,
	},
}

var chats = []Chat{
	{ID: 1, Name: "Laura Gómez", Role: "Emprendedora", Avatar: "LG", LastMessage: "Gracias por tu interés en el proyecto", Time: "10:30 AM", Unread: 2, Online: true},
	{ID: 2, Name: "Carlos Ruiz", Role: "Inversor", Avatar: "CR", LastMessage: "¿Podríamos agendar una reunión?", Time: "Ayer", Unread: 0, Online: false},
	{ID: 3, Name: "María González", Role: "Emprendedora", Avatar: "MG", LastMessage: "He actualizado los documentos", Time: "2 días", Unread: 1, Online: true},
}

// every conversation opens on the same demo thread
var chatThread = []ChatMessage{
	{ID: 1, Sender: "other", Text: "Hola! Gracias por tu interés en mi proyecto de agricultura sostenible", Time: "10:15 AM"},
	{ID: 2, Sender: "me", Text: "Hola Laura! Me parece muy interesante tu propuesta. ¿Podrías compartirme más detalles sobre las proyecciones financieras?", Time: "10:20 AM"},
	{ID: 3, Sender: "other", Text: "Claro! Te envío el documento actualizado. Nuestras proyecciones muestran un ROI del 18% en 24 meses.", Time: "10:25 AM"},
	{ID: 4, Sender: "other", Text: "Gracias por tu interés en el proyecto", Time: "10:30 AM"},
}

var notifications = []Notification{
	{ID: 1, Type: "opportunity", Message: "Nueva oportunidad: Agricultura Sostenible coincide con tus intereses", Time: "5 min", Action: "Ver Proyecto", ActionView: "project-detail"},
	{ID: 2, Type: "message", Message: "Tienes un nuevo mensaje de Juan Pérez", Time: "1 h", Action: "Ver Mensaje", ActionView: "messages"},
	{ID: 3, Type: "success", Message: "Tu proyecto \"Energía Solar\" fue aprobado", Time: "2 h", Action: "Ver Estado", ActionView: "entrepreneur-dashboard"},
	{ID: 4, Type: "update", Message: "Actualización: Proyecto \"Agua Limpia\" alcanzó 50% de financiamiento", Time: "1 día", Read: true, Action: "Ver Detalles", ActionView: "investor-portfolio"},
	{ID: 5, Type: "reminder", Message: "Completa tu perfil para recibir mejores recomendaciones", Time: "2 días", Read: true, Action: "Completar", ActionView: "profile-settings"},
}

// badge count shown on the bell regardless of read flags
const notificationBadge = 5

var featuredProject = ProjectDetail{
	Title:         "Agricultura Urbana Sostenible",
	Entrepreneur:  "Laura Gómez",
	Sector:        "Agricultura",
	Goal:          usd(100000),
	Raised:        usd(45000),
	ROI:           18,
	TimelineMonth: 24,
	Investors:     28,
	MinInvestment: usd(1000),
	Description:   "Proyecto innovador de agricultura urbana que busca revolucionar la producción de alimentos en las ciudades, generando empleo local y reduciendo la huella de carbono.",
	Impact:        Impact{Beneficiaries: 300, Jobs: 25, CO2Reduction: "500 toneladas/año"},
	ODS:           []string{"Hambre Cero", "Trabajo Decente", "Acción Climática"},
	Documents: []Document{
		{Name: "Plan de Negocio", Size: "2.4 MB", Type: "PDF"},
		{Name: "Proyecciones Financieras", Size: "1.8 MB", Type: "XLSX"},
		{Name: "Estudio de Impacto", Size: "3.2 MB", Type: "PDF"},
	},
	Milestones: []Milestone{
		{Title: "Fase de Investigación", Status: MilestoneCompleted, Date: "Ene 2024"},
		{Title: "Prototipo y Validación", Status: MilestoneCompleted, Date: "Mar 2024"},
		{Title: "Lanzamiento Piloto", Status: MilestoneInProgress, Date: "Jun 2024"},
		{Title: "Escalamiento", Status: MilestonePending, Date: "Oct 2024"},
	},
}

var impactStories = []ImpactStory{
	{Name: "María López", Project: "Agricultura Sostenible", Impact: "300 familias beneficiadas", ROI: "18% ROI"},
	{Name: "Carlos Ruiz", Project: "Educación Rural", Impact: "1,200 niños con acceso", ROI: "15% ROI"},
	{Name: "Ana Gómez", Project: "Energía Solar", Impact: "50 comunidades iluminadas", ROI: "22% ROI"},
	{Name: "Luis Martínez", Project: "Turismo Sostenible", Impact: "200 empleos generados", ROI: "20% ROI"},
	{Name: "Sofía Ramírez", Project: "Agua Potable", Impact: "5,000 personas con acceso", ROI: "17% ROI"},
	{Name: "Jorge Fernández", Project: "Salud Comunitaria", Impact: "800 consultas médicas", ROI: "16% ROI"},
}

var benefits = []Benefit{
	{Title: "Impacto Medible", Description: "Cada inversión genera métricas claras de impacto social y ambiental verificables."},
	{Title: "Retornos Competitivos", Description: "ROI promedio del 15-20% anual con proyectos validados por nuestro equipo."},
	{Title: "Total Transparencia", Description: "Seguimiento en tiempo real de tus inversiones con reportes periódicos detallados."},
	{Title: "Comunidad Activa", Description: "Conecta con emprendedores e inversores comprometidos con el cambio."},
	{Title: "Due Diligence Riguroso", Description: "Cada proyecto pasa por un proceso exhaustivo de validación antes de publicarse."},
	{Title: "Portafolio Diversificado", Description: "Accede a proyectos en múltiples sectores: agricultura, educación, energía y más."},
}

var investorStats = InvestorStats{TotalInvested: usd(120500), AnnualROI: "+12.5%", ActiveProjects: 8}

var entrepreneurOverview = EntrepreneurOverview{
	ProjectUnderReview: "Agricultura Urbana Sostenible",
	ResponseTime:       "2-3 días hábiles",
	ProfileCompletion:  85,
	Checklist: []ChecklistItem{
		{Label: "Información básica", Done: true},
		{Label: "Documentos legales", Done: true},
		{Label: "Estados financieros", Done: false},
	},
	Raised:    usd(45000),
	Goal:      usd(100000),
	Investors: 28,
}
