package catalog

// Guía de Auditoría Operativa Grido — Abril 2025.
var criteria = []Criterion{
	{
		ID:          "A.1",
		Section:     "A",
		Name:        "Exterior (pisos, zócalos, cordón cuneta, techos, muros, iluminación, pérgolas, toldos, bicicletero, dog parking y juegos infantiles): Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Pisos en perfecto estado; piezas sanas, homogéneas, zócalos completos, juntas bien tomadas. Rejillas sanas y bien instaladas. Deck pintado y fijado. Muros y cielorrasos sin humedad, rajaduras ni imperfecciones. Techos en buen estado. Pérgolas limpias. Bicicletero, dog parking y juegos infantiles en buen estado. Hasta 3 desvíos leves permitidos. Mínima falta de higiene (polvillo del momento, pequeñas manchas). Si se resuelve durante la auditoría → conforme.",
		Observacion: "Mínimo detalle de estructura. Zócalo un poco gastado o con mínima rotura sin riesgo. Deck con madera algo descolorida. Pequeños detalles de deterioro poco visibles (muro descascarado, agrietado, esquineros con roturas). Mínimos detalles de terminación.",
		NoConforme:  "Defectos evidentes de gran visibilidad que atentan contra la seguridad o la imagen de marca. Falta de tapa de desagüe, piezas rotas/faltantes muy visibles, piezas sueltas o con desniveles. Deck muy despintado, maderas levantadas/rotas/faltantes. Graffitis. Iluminación defectuosa. 4 o más desvíos leves. Marcada falta de higiene: grasa acumulada, manchas de días anteriores, telas de araña, suciedad ajena al lugar.",
	},
	{
		ID:          "A.2",
		Section:     "A",
		Name:        "Marquesina: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Estructura en perfecto estado, toda la iluminación funcionando. Sin deterioro, rayadura, chapa abollada/rota, sin óxido. Chapa y corpóreo sanos. Cartel bandera y saliente en condiciones. Perfecto estado de limpieza.",
		Observacion: "Pequeños defectos de estructura que no afecten la imagen de marca. Rayaduras o roturas poco visibles. Mínima falta de higiene (polvillo, pequeñas manchas). Suciedad por lluvia del día anterior.",
		NoConforme:  "Defecto muy visible o grave. Lonas y chapas percudidas, rotas, oxidadas, despintadas. Logo corpóreo sin iluminación. Riesgo para la seguridad. Falta de marquesina. Reflectores apagados en horario nocturno. Marcada falta de higiene general.",
	},
	{
		ID:          "A.3",
		Section:     "A",
		Name:        "Mobiliario: Estado y limpieza (mesas, sillas, sombrillas, living)",
		Check:       CheckOperativo,
		Conforme:    "En excelente estado: sanos, pintados, ordenados, cantidad suficiente. Perfecto estado de limpieza.",
		Observacion: "Defectos poco significativos: rayaduras menores, presencia menor de óxido, caños apenas abollados. Sillas/mesas algo desordenadas. Detalles en tapizado. Falta de algunos regatones. Mínima falta de higiene.",
		NoConforme:  "Defecto visible que afecte la imagen o la seguridad. Superficies oxidadas, pintura muy desgastada, color no autorizado, caños desoldados. Tapas de mesas rotas, ploteos dañados. Living muy deteriorado. Sombrillas inestables. Marcada falta de higiene.",
	},
	{
		ID:          "A.4",
		Section:     "A",
		Name:        "Iluminación interior: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Artefactos sanos, sin defectos. Todas las luminarias funcionando y encendidas en horario nocturno. Perfecto estado de limpieza.",
		Observacion: "Leves defectos de estructura. Pocos plafones o lámparas quemadas. Pequeñas roturas. Mínima falta de higiene. Leve presencia de insectos.",
		NoConforme:  "Defectos visibles que afecten imagen o seguridad. Lámparas/LED/reflectores quemados. Plafones desprendidos. Luz insuficiente. Marcada falta de higiene. Marcada presencia de insectos.",
	},
	{
		ID:          "A.5",
		Section:     "A",
		Name:        "Pisos, aberturas, techo y zócalos en salón: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Pisos en perfecto estado, piezas sanas y homogéneas, zócalos completos, juntas bien tomadas. Sin humedad, rajaduras. Techos y cielorrasos en buen estado. Aberturas en perfecto estado, vidrios y herrajes sanos. Perfecto estado de limpieza.",
		Observacion: "Superficies con mínima rotura sin riesgo. Aberturas con pequeños detalles de estructura. Vinilo con pequeña rotura, vidrios con pequeñas rajaduras. Cortina metálica con graffitis visibles solo cuando está abierto. Mínima falta de higiene.",
		NoConforme:  "Defectos evidentes contra seguridad o higiene alimentaria. Falta de zócalos, tapa de desagüe, piezas rotas muy visibles. Obstrucciones en circulación. Alfombra deteriorada. Iluminación de garganta sin funcionar. Techos sin revocar. Puertas rotas o con mal funcionamiento. Marcada falta de higiene.",
	},
	{
		ID:          "A.6",
		Section:     "A",
		Name:        "Muros y revestimientos de muros en salón: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "En perfecto estado sin humedad, rajaduras. Superficies sanas y homogéneas. Revestimiento de madera nebraska en condiciones. Cuadros bien puestos. AMH con cerámicos bricks en excelente estado. Paredes interiores revocadas. Perfecto estado de limpieza.",
		Observacion: "Superficies con mínima rotura sin riesgo. Falta de zócalos o repisas. Módulos separados de la pared. Mínima falta de higiene.",
		NoConforme:  "Evidente falta de mantenimiento o deterioro: mucha humedad, pintura descascarada, cerámicos rotos/faltantes. Insumos ajenos a la marca visibles. Bricks deteriorados. Fallas que afecten seguridad alimentaria. Marcada falta de higiene.",
	},
	{
		ID:          "A.7",
		Section:     "A",
		Name:        "Cartelera: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Precios autorizados. Sabores faltantes marcados correctamente. Perfecto estado de limpieza.",
		Observacion: "Pequeños defectos de estructura que no afecten imagen. Falta de algún precio, cables visibles, marcos sueltos. Sabores faltantes no marcados. Mínima falta de higiene.",
		NoConforme:  "Defecto muy visible o grave. Pantallas azules o manchadas. Marcada falta de higiene. Imágenes desgastadas.",
	},
	{
		ID:          "A.8",
		Section:     "A",
		Name:        "Mostradores: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Estructura en perfecto estado. Vidrio templado en perfecto estado. Material de comunicación en formato autorizado, en buen estado y limpio.",
		Observacion: "Pequeños defectos de estructura. Iluminación parcial. Material de comunicación no autorizado. Mínima falta de higiene.",
		NoConforme:  "Defecto grave: piedra partida, luminaria sin funcionar, falta de acrílico protector, vidrios flojos/rajados/rotos, mostrador no fijado. Exhibición de productos vacíos. Marcada falta de higiene.",
	},
	{
		ID:          "A.9",
		Section:     "A",
		Name:        "Separación de áreas / Orden y estado del depósito",
		Check:       CheckOperativo,
		Conforme:    "Puerta de depósito señalizada. Correcta distribución y separación entre sectores. Instalaciones de material sanitario en buenas condiciones. Pisos sin roturas ni grietas. Iluminación adecuada. Estanterías/tarimas de material lavable. Recepción de pedidos sobre tarimas adecuadas.",
		Observacion: "Indicios de oxidación, pintura rayada. Puertas levemente descuadradas. Defectos de limpieza propios de la operatividad. Falta de señalización en puerta de depósito.",
		NoConforme:  "Sin división física entre sectores. Puertas rotas. Cortinas en lugar de puertas. Baños usados como depósitos. Instalaciones de madera sin tratar. Techos rotos. Elementos ajenos al sector. Estanterías de material no autorizado. Sin tarima de recepción. Marcada falta de higiene.",
	},
	{
		ID:          "A.10",
		Section:     "A",
		Name:        "¿El local permite descarga eficiente de productos congelados?",
		Check:       CheckOperativo,
		Conforme:    "El carrito/zorrita pasa por la puerta y se traslada sin inconvenientes. Rampas disponibles. Lugar para estacionar el camión. Nada atenta contra la calidad del producto ni la cadena de frío.",
		Observacion: "No cumple con alguno de los requisitos.",
		NoConforme:  "",
	},
	{
		ID:          "A.11",
		Section:     "A",
		Name:        "¿Hay espacio disponible para descansar?",
		Check:       CheckOperativo,
		Conforme:    "Se identifica un espacio limpio, de tamaño acorde a la cantidad de empleados, con espacio para sentarse y sin insumos ni mobiliario almacenado.",
		Observacion: "Existe espacio pero está sucio o se utiliza para almacenar insumos.",
		NoConforme:  "No se identifica ningún espacio destinado a los colaboradores.",
	},
	{
		ID:          "B.1",
		Section:     "B",
		Name:        "Portal de Novedades, musicalización en exterior y en salón",
		Check:       CheckOperativo,
		Conforme:    "Música obligatoria en salón, agradable y variada, sonido adecuado. Equipo en buen estado. TV con portal de novedades en salón. LED o similar. Parlantes fuera de AMH y Caja.",
		Observacion: "TV de pulgadas inferiores al estándar. Equipo obstruyendo puesto operativo. Cables sueltos. Detalles de higiene. Imágenes desactualizadas. Leve desgaste.",
		NoConforme:  "Ausencia de música. TV transmitiendo telenovelas, partidos o noticias. TV ubicado en AMH. TV apagado. Falta de TV. Equipos no autorizados.",
	},
	{
		ID:          "B.2",
		Section:     "B",
		Name:        "Climatización y ventilación: Estado y limpieza",
		Check:       CheckOperativo,
		Conforme:    "Temperatura acorde. Equipo instalado, en excelente estado, con frigorías/calorías adecuadas. En funcionamiento si el clima lo requiere. Descarga de condensación prolija. Limpio.",
		Observacion: "Falla menor de estructura. Paleta/rejilla con roturas mínimas. Escaso polvillo.",
		NoConforme:  "Importante defecto o falla de seguridad. Falta de equipo, roto o apagado. Balde como recipiente de desagote. Filtros y rejillas sucios. Frigorías insuficientes. Carcasa con telas de araña. Mangueras con hongos. Estufas o ventiladores no autorizados.",
	},
	{
		ID:          "B.3",
		Section:     "B",
		Name:        "Dispenser de agua",
		Check:       CheckOperativo,
		Conforme:    "Equipo en perfecto estado y funcionamiento. Salida de agua adecuada. Refrigeración óptima. Agua caliente desactivada. Ubicado en salón (o AMH si el espacio no lo permite).",
		Observacion: "Carcasa con pequeños defectos. Refrigeración deficiente. Roturas que permitan funcionamiento. Falta del receptáculo o rejilla. Falta de higiene del momento.",
		NoConforme:  "Ausencia de equipo o sin funcionamiento. Rotura grave o riesgo de seguridad. Agua caliente funcionando al alcance de clientes. Sin agua o vasos. Sin refrigeración. Ubicado fuera del salón/AMH. Falta de higiene evidente.",
	},
	{
		ID:          "B.4",
		Section:     "B",
		Name:        "Matafuegos, luces de emergencia, instalación eléctrica y señalética (Seguridad)",
		Check:       CheckOperativo,
		Conforme:    "Matafuegos: excelente estado, funcionando, bien instalado, accesible, limpio, carga habilitada, mínimo 5 kg, tipo ABC, colgado. Luz de emergencia: instalada y enchufada, una por sector. Desniveles señalizados en amarillo o rojo. Señalética de seguridad presente. Barandas bien instaladas. Instalación eléctrica sin cables a la vista.",
		Observacion: "Matafuegos/luz de emergencia con presencia de polvo. Deterioro poco visible en señalética. Barandas con leves detalles estéticos sin riesgo.",
		NoConforme:  "Ausencia de matafuegos o carga vencida. Sin luz de emergencia o desenchufadas. Desniveles sin señalización. Escaleras sin barandas. Cables a la vista, conexiones mal realizadas, enchufes sin tapas. Falta de disyuntor.",
	},
	{
		ID:          "B.5",
		Section:     "B",
		Name:        "Baño para clientes",
		Check:       CheckOperativo,
		Conforme:    "Puertas/aberturas en excelente estado. Extractores u ozonizadores funcionando. Sin pérdidas de agua. Inodoro con tapa y botón funcionando. Dispenser de jabón y papel con elementos. Espejos sanos con película antiestallido. Tela mosquitera sana. Señalizado. Limpio. Secamanos enchufado y funcionando.",
		Observacion: "Desgaste mínimo en elementos. Caños a la vista con conexiones en buen estado. Falta de higiene del momento. Falta de señalización. Secamanos desenchufado.",
		NoConforme:  "Puertas/divisorios defectuosos. Dispensers rotos, falta de jabón/toallas. Sin espejos o astillados. Sin extractor/ventiluz. Paredes con humedad. Iluminación deficiente. Paredes sucias, hongos. Baño inundado. Malos olores.",
	},
	{
		ID:          "B.6",
		Section:     "B",
		Name:        "Sector de juegos infantiles",
		Check:       CheckOperativo,
		Conforme:    "Juegos en perfecto estado con adecuado sistema de seguridad. Piso blando cubriendo toda la superficie. Perfecto estado de higiene.",
		Observacion: "Detalles mínimos de estructura. Juegos apenas despintados. Fallas apenas visibles. En exterior: falta de piso blando o césped. Detalles menores de higiene.",
		NoConforme:  "Defecto grave de seguridad o imagen de marca. Mal funcionamiento, partes mal fijadas, oxidadas, incompletas. Falta de piso de goma interior. Maquinitas en mal estado. Peloteros en salón. Importante falta de higiene.",
	},
	{
		ID:          "B.7",
		Section:     "B",
		Name:        "SmartFran - Club Grido Activo - Conexión y funcionamiento",
		Check:       CheckOperativo,
		Conforme:    "SmartFran instalado y funcionando. Club Grido activo, instalado, en funcionamiento (online). Lector de tarjetas funcionando. Tabla de canjes oficial impresa disponible.",
		Observacion: "No puede ingresar al sistema por problemas de conectividad. Tabla de canje no a la vista o material diferente al oficial. Colocadas en atriles.",
		NoConforme:  "No cuenta con sistema loyalty o sin funcionamiento. Falta de lector de tarjetas. No dispone de tabla de canjes oficial impresa.",
	},
	{
		ID:          "B.8",
		Section:     "B",
		Name:        "APP GRIDO: Gestión correcta del canal digital",
		Check:       CheckOperativo,
		Conforme:    "Local disponible en App Grido al menos en take away. Exhibe material de descarga de APP. Pedidos cancelados no superan los efectivos. Al menos un pedido efectivo en el último mes.",
		Observacion: "Local cerrado en App en take away. No exhibe material de descarga. Pedidos cancelados iguales a los efectivos.",
		NoConforme:  "No gestiona la APP Grido. Pedidos cancelados superan los efectivos. Sin pedidos efectivos en el último mes.",
	},
	{
		ID:          "B.9",
		Section:     "B",
		Name:        "Posnet y Grido Go (tótem autogestión)",
		Check:       CheckOperativo,
		Conforme:    "Posnet en correcto funcionamiento para tarjeta crédito/débito. Tótem de autogestión completo y funcionando.",
		Observacion: "Falta algún elemento del tótem. Deterioro o falta de higiene evidente.",
		NoConforme:  "No cuenta con posnet o no funciona. Pantalla del tótem apagada o fuera de funcionamiento.",
	},
	{
		ID:          "B.10",
		Section:     "B",
		Name:        "Disponibilidad de Wi-Fi para el cliente",
		Check:       CheckOperativo,
		Conforme:    "Wi-Fi disponible para clientes con señalética oficial indicando disponibilidad.",
		Observacion: "Falta de señalética o leve deterioro.",
		NoConforme:  "No dispone de señal Wi-Fi para clientes.",
	},
	{
		ID:          "B.11",
		Section:     "B",
		Name:        "¿Dispone de generador eléctrico?",
		Check:       CheckOperativo,
		Conforme:    "Cuenta con generador eléctrico.",
		Observacion: "",
		NoConforme:  "No cuenta con generador eléctrico.",
	},
	{
		ID:          "C.1",
		Section:     "C",
		Name:        "Disponibilidad de productos a granel",
		Check:       CheckOperativo,
		Conforme:    "Disponibilidad total de productos a granel incluidos los de testeo.",
		Observacion: "Entre 1 y 4 faltantes de productos a granel (si los faltantes son por falta de disponibilidad de fábrica → conforme).",
		NoConforme:  "5 o más faltantes de productos a granel.",
	},
	{
		ID:          "C.2",
		Section:     "C",
		Name:        "Disponibilidad y exhibición de productos secos e insumos generales",
		Check:       CheckOperativo,
		Conforme:    "Disponibilidad de toppings, crema, vasos, cucharitas, salsas, envases térmicos, servilleteros, servilletas. Grido Tops: mínimo 3 variedades. Exhibidora de tops sana y limpia. Grido Market y exhibidores en excelente estado, productos de frente, 3/4 completo.",
		Observacion: "Falta de hasta 2 insumos o variedades de salsa. Grido Tops: hasta 2 variedades. Detalles en vinilo o falta de higiene leve. Leve deterioro en Grido Market. Material de comunicación no autorizado o escrito a mano.",
		NoConforme:  "Faltan 3 o más insumos o variedades. No dispone de Grido Tops. Falta de exhibidora de tops o deterioro evidente. Falta de Grido Market. Productos no autorizados o cajas vacías.",
	},
	{
		ID:          "C.3",
		Section:     "C",
		Name:        "Condiciones de almacenamiento, fraccionamiento y rotulado",
		Check:       CheckOperativo,
		Conforme:    "Productos de distinta naturaleza no en misma estantería (o en orden correcto). Productos sobre tarimas a min 14 cm. Envases cerrados, sanos, protegidos. Etiquetas con datos reglamentarios. Productos fallados/vencidos separados e identificados. Fraccionados en recipientes plásticos aptos, herméticos. Registro de fraccionados completo (30 días).",
		Observacion: "Falta de orden en rack o estantería. Leve manchas propios de la operatividad.",
		NoConforme:  "Cajas almacenadas sobre el piso. Envases abiertos/rotos. Sin diferencia entre circulación y estibación. Productos con etiqueta rota/borrosa. Productos vencidos sin identificación. Envases sucios o sin etiquetar. Registros incompletos o formato diferente.",
	},
	{
		ID:          "C.4",
		Section:     "C",
		Name:        "Equipos de frío (pozos, cámaras, freezer, exhibidora, toppinera, frigobar): Higiene y mantenimiento",
		Check:       CheckOperativo,
		Conforme:    "Materiales sanitarios, impermeables, resistentes. Freezer, exhibidoras, pozos y cámaras en buen estado y funcionamiento. Ploteo correcto. En buen estado de higiene sin acumulación de hielo. Toppinera y frigobar en buen estado. Cenefas y comunicación en correcto estado.",
		Observacion: "Detalles en el ploteo. Suciedad propia del momento. Leve acumulación de hielo. Rejilla de ventilación sucia. Precios escritos a mano.",
		NoConforme:  "Cámaras: falta de estantes, piso sanitario, mal cierre, burletes deteriorados. Freezer/exhibidoras: ploteo deteriorado, tapas rotas, burletes rotos, fallas eléctricas. Toppinera/frigobar: tapas rotas, temperatura fuera de rango. Suciedad adherida, hongos, hielo acumulado grueso.",
	},
	{
		ID:          "C.5",
		Section:     "C",
		Name:        "Temperatura de equipos de frío",
		Check:       CheckOperativo,
		Conforme:    "Granel: pozos/cámaras a -18°C. Granel mostrador: -13.5°C a -15°C. Impulsivos: -18°C. Sin cristalización ni signos de haber perdido consistencia.",
		Observacion: "",
		NoConforme:  "Variación de temperatura superior a 2°C de la ideal. Signos de haber perdido consistencia: cristalizados, arenosos, deformados. Granel en mostrador abiertos a mayor de -13.5°C.",
	},
	{
		ID:          "C.6",
		Section:     "C",
		Name:        "Capacidad de frío en la franquicia",
		Check:       CheckOperativo,
		Conforme:    "Cantidad de bultos relevada adecuada.",
		Observacion: "",
		NoConforme:  "",
	},
	{
		ID:          "C.7",
		Section:     "C",
		Name:        "Prevención de la contaminación cruzada",
		Check:       CheckOperativo,
		Conforme:    "Cuidado en manipulación de sabores. Respeto BPM. Cajas bien presentadas sin roturas. Helados bajados. Alisado solo al final de la jornada. Sin indicios de limpieza con esponjas. Colaboradores se lavan las manos con frecuencia. Cucuruchos con servilleta, térmicos por la base.",
		Observacion: "Fuera de hora pico: leve presencia de otros sabores o restos de cucuruchos. Un sabor sobrepasa el nivel. Cajas deterioradas o bajado desprolijo.",
		NoConforme:  "Presencia de hielo u otros sabores. Helados contaminados con material extraño. Interior de cajas completamente limpio (limpiado con esponja). No se respetan normas de manipulación. Uso de films para cierre. Mercadería al sol o más de 15 min fuera del freezer.",
	},
	{
		ID:          "C.8",
		Section:     "C",
		Name:        "Abastecimiento de agua",
		Check:       CheckOperativo,
		Conforme:    "Agua potable fría y caliente en AMH y depósito. Lavado de tanques 1 vez/año.",
		Observacion: "Sin agua caliente en depósito o no funciona. No se respeta frecuencia de lavado de tanques.",
		NoConforme:  "Sin agua caliente en AMH. Agua turbia. Larvas o gusanos en agua. Acumulación de tierra en tanque.",
	},
	{
		ID:          "C.9",
		Section:     "C",
		Name:        "AMH (Mesadas, bacha, lavabochero, grifo monocomando): Higiene y mantenimiento",
		Check:       CheckOperativo,
		Conforme:    "Bacha/lavabocheros/monocomando en perfecto funcionamiento. Buen suministro y desagüe. Mesadas y bajomesada autorizados, melamina sana, herrajes completos. Limpio.",
		Observacion: "Defectos visibles sin afectar seguridad alimentaria. Poca presión de agua. Suciedad propia de la operatividad. Falta de algún herraje. Restos de adhesivos.",
		NoConforme:  "Pérdidas de agua, falta de agua, desagüe defectuoso. Falta de monocomando. Grasa adherida, hongos. Muebles no autorizados, piedra agrietada, oxidados. Estantes forrados con bolsas/papel. Elementos ajenos al sector. Objetos personales visibles.",
	},
	{
		ID:          "C.10",
		Section:     "C",
		Name:        "Equipos de producción (licuadora, cremera, chocolatera, maq. café, bols, utensilios): Higiene y mantenimiento",
		Check:       CheckOperativo,
		Conforme:    "Materiales sanitarios. Licuadora, chocolatera, cremera completas, sanas, funcionando, a la vista. Cafetera, bols, dispenser completos con tapas. Utensilios de acero inoxidable en buen estado. 6 paletas, 6 bocheros, 4 corvetes. Termómetro de punción funcionando. Todo limpio.",
		Observacion: "Ausencia de vaso medidor. Falta de perillas/manija. Derrames propios del momento. Bochero con medialuna trabada. Hasta 2 bocheros/paletas/corvetes menos.",
		NoConforme:  "Falta de equipos. Rosca de pico de cremera dañada. Cables dañados, vaso roto. Equipamiento no autorizado. Hongos en licuadora. Restos de crema en pico. Faltante de 3+ bocheros/paletas. Falta de termómetro. Mangos de madera. Paletas de aluminio.",
	},
	{
		ID:          "C.11",
		Section:     "C",
		Name:        "Equipos complementarios (balanza, microondas, caja, PC): Higiene y mantenimiento",
		Check:       CheckOperativo,
		Conforme:    "Equipos en buen estado. Balanza digital con visor a la vista del cliente. Microondas con display funcionando. Cables ordenados. Limpios.",
		Observacion: "Leve deterioro. Visor/botonera dañados. Microondas sin plato. Polvillo/manchas recientes. Papeles pegados con vista al colaborador.",
		NoConforme:  "Equipos fuera de funcionamiento. Paredes oxidadas, riesgo eléctrico. Ausencia de equipos. Vidrio/puerta/plato roto. Cables desordenados. Acumulación de residuos. Papeles pegados con vista al cliente.",
	},
	{
		ID:          "C.12",
		Section:     "C",
		Name:        "Elementos de higiene personal (dispenser jabón y toallas en depósito y AMH)",
		Check:       CheckOperativo,
		Conforme:    "Equipos sanos, con disponibilidad de jabón y papel, funcionando correctamente. Limpios.",
		Observacion: "Leve deterioro. Manchas recientes (helado, chocolate, almíbar).",
		NoConforme:  "Dispensers rotos o ausentes. Falta de jabón/toallas. Despegados de la pared. Sostenidos con cintas. Suciedad adherida.",
	},
	{
		ID:          "C.13",
		Section:     "C",
		Name:        "Elementos de limpieza y desinfección. Ausencia de sustancias peligrosas",
		Check:       CheckOperativo,
		Conforme:    "Productos en sector definido e identificado, separados de materia prima. Productos autorizados. Rejillas/esponjas enteras y sanas, colores diferenciados (AMH: blanco, salón/exterior: amarillo, baño: otro color). Escobillón/escoba/pala con cabos de plástico o metal forrado. Productos químicos en envases sanos, cerrados, identificados. Sin sustancias peligrosas.",
		Observacion: "Hasta 2 rejillas menos de lo exigido. Jabón en pan y esponja sobre mesada. Mangos de madera sin forrar.",
		NoConforme:  "Productos no autorizados. Rejillas con roturas, mezcladas, rejilla no autorizada. Menos de la mitad de rejillas exigidas. Esponjas metálicas en AMH. Elementos deteriorados/sucios. Productos químicos abiertos, rotos, sin identificación. Presencia de plaguicidas, venenos, nafta, solventes, insecticidas.",
	},
	{
		ID:          "C.14",
		Section:     "C",
		Name:        "¿El baño de los colaboradores está en condiciones?",
		Check:       CheckOperativo,
		Conforme:    "Limpio, incluido paredes, techos, pisos, extractores. Ventiluz con tela mosquitera limpia. Con papel higiénico, toalla de mano y jabón.",
		Observacion: "Falta de higiene del momento no corregida.",
		NoConforme:  "Paredes sucias, hongos, pérdida de agua, extractores sucios, baño inundado, malos olores, telas de araña, mosquiteras con tierra.",
	},
	{
		ID:          "C.15",
		Section:     "C",
		Name:        "Higiene y Salud del Colaborador",
		Check:       CheckOperativo,
		Conforme:    "Correcto aseo personal. Pelo limpio, uñas cortas y limpias. Lavado de manos con frecuencia. Sin maquillaje, esmalte de uñas ni objetos de adorno. Pelo recogido con cofia. Sin barba. Correctos hábitos de higiene. Sin heridas cortantes en AMH.",
		Observacion: "",
		NoConforme:  "Falta de higiene percibida, uñas largas/sucias. No respeta lavado de manos. Maquillaje, uñas pintadas, adornos (cadenas, anillos, pulseras, aros). Cabello suelto. Barba. No respetar normas de manipulación. Manipular celular y luego helado. Heridas cortantes expuestas en AMH.",
	},
	{
		ID:          "C.16",
		Section:     "C",
		Name:        "Uniforme del Colaborador",
		Check:       CheckOperativo,
		Conforme:    "Uniformes en excelente estado, sin roturas ni remiendos, sin desteñir. Acorde al sector. Calzado cerrado. Uniforme actualizado (cofia, delantal jean, remera, pantalón jean).",
		Observacion: "",
		NoConforme:  "Colaboradores ingresando con ropa de trabajo. Uniformes rotos/deshilachados, desteñidos, sucios, arrugados. Falta de elementos. Calzado abierto (crocs, alpargatas). Logo desactualizado.",
	},
	{
		ID:          "C.17",
		Section:     "C",
		Name:        "Conocimiento del colaborador",
		Check:       CheckOperativo,
		Conforme:    "Responde correctamente pregunta aleatoria de productos o procedimientos.",
		Observacion: "",
		NoConforme:  "Desconoce el producto/procedimiento y no puede acceder a la información.",
	},
	{
		ID:          "C.18",
		Section:     "C",
		Name:        "Constancia AFIP, Inscripción Provincial, Habilitación Municipal, Carnet Sanitario y Control de plagas",
		Check:       CheckOperativo,
		Conforme:    "Toda la documentación requerida disponible. Todo el personal con carnet de manipulador. Certificado de desinfección exhibido a 30 días y formulario MIP.",
		Observacion: "Falta un documento. Al menos un colaborador sin carnet vigente en el local. Certificado vencido. MIP incompleto.",
		NoConforme:  "",
	},
	{
		ID:          "D.1",
		Section:     "D",
		Name:        "Exterior (pisos, zócalos, muros, iluminación, pérgolas y toldos): Formato",
		Check:       CheckComercial,
		Conforme:    "Formato según planilla técnica. Techos/cielorrasos del mismo color que muros exterior. Pérgolas según ficha técnica. Cajón de cortina metálica del color de muros. Correcta colocación de motores de aire.",
		Observacion: "",
		NoConforme:  "Paredes de color no autorizado. Toldos de colores no autorizados, logo desactualizado. Iluminación fuera de formato. Pérgolas fuera de ficha técnica.",
	},
	{
		ID:          "D.2",
		Section:     "D",
		Name:        "Marquesina: formato",
		Check:       CheckComercial,
		Conforme:    "Marquesina con logo nuevo. Saliente con imagen nueva. Cartel bandera actualizado. Brazos reflectores LED.",
		Observacion: "",
		NoConforme:  "Marquesina con logo viejo. Cartel bandera desactualizado. Falta de marquesina.",
	},
	{
		ID:          "D.3",
		Section:     "D",
		Name:        "Comunicación en vidriera",
		Check:       CheckComercial,
		Conforme:    "Faja esmerilada con diseño correcto a 90 cm del piso. Al menos un soporte de comunicación autorizado bien colocado y actualizado. Microperforados y vinilos en condiciones. Puerta: carteles de servicio autorizados (abierto-cerrado/horarios, Club Grido, WiFi). Precios autorizados.",
		Observacion: "No cumple con uno de los requisitos. Franja gris lisa. Microperforados con mínimos detalles. Falta un cartel obligatorio o desactualizado.",
		NoConforme:  "No cumple con 2+ requisitos. Precios no autorizados. Vidriera cargada con más de 2 soportes. Soportes mal colocados o vacíos. Cartelería hecha a mano o ajena. Material Covid. Formatos no autorizados.",
	},
	{
		ID:          "D.4",
		Section:     "D",
		Name:        "Mobiliario exterior: formato (mesas, sillas, sombrillas, cerco)",
		Check:       CheckComercial,
		Conforme:    "Mesas blancas lisas, sillas ONE (blanco, azul, rojo o naranja) o Río. No convivencia de ONE naranjas y rojas, ni ONE y Río en mismo sector. Sombrillas blancas o azules según ficha. Bancos metálicos azules o de madera según ficha (no pueden convivir).",
		Observacion: "",
		NoConforme:  "Sillas que no son ONE o Río. Sillas ONE amarillas. Convivencia naranja y rojo. Convivencia ONE y Río en mismo sector. Sombrillas fuera de formato. Comunicación no autorizada en mesas/servilleteros.",
	},
	{
		ID:          "D.5",
		Section:     "D",
		Name:        "Mobiliario interior: formato (mesas, sillas, living)",
		Check:       CheckComercial,
		Conforme:    "Mesas blancas lisas, sillas ONE o Río (mismas reglas de no convivencia). Barras blancas con banquetas MILO. Living: butacón BARI con mesa ratona de madera o sillón PAMPA con mesa ratona blanca.",
		Observacion: "",
		NoConforme:  "Sillas fuera de formato. Convivencias no autorizadas. Bancos metálicos en salón. Comunicación no autorizada en mesas/servilleteros.",
	},
	{
		ID:          "D.6",
		Section:     "D",
		Name:        "Iluminación interior: formato",
		Check:       CheckComercial,
		Conforme:    "Artefactos autorizados según planilla técnica (plafones LED compactos, riel blanco, galponeras, bandejas). Luz fría o neutra en AMH, cálida o neutra en sitting.",
		Observacion: "",
		NoConforme:  "Lámparas colgantes no autorizadas o deterioradas. Iluminación fuera de formato.",
	},
	{
		ID:          "D.7",
		Section:     "D",
		Name:        "Pisos, aberturas, techo y zócalos en salón: Formato",
		Check:       CheckComercial,
		Conforme:    "Formato según planilla técnica. Techos/cielorrasos del mismo color que muros. Iluminación de garganta AMH con luces blancas, cálidas o neutras. Color autorizado. Cortinas blackout solo en sitting como protección solar.",
		Observacion: "",
		NoConforme:  "Alfombra deteriorada o desactualizada. Cortinas de material/color no autorizado. Iluminación de color no autorizada. Material promocional colgado del techo no autorizado.",
	},
	{
		ID:          "D.8",
		Section:     "D",
		Name:        "Muros y revestimientos en salón: formato",
		Check:       CheckComercial,
		Conforme:    "Ploteos actualizados. Paredes de color autorizado. Revestimiento de madera en condiciones. Cuadros con imágenes autorizadas. AMH con cerámicos bricks. Zócalos y repisas corian. Rollos de cortina cubiertos con caja de durlock.",
		Observacion: "",
		NoConforme:  "Ploteos no autorizados o desactualizados. Paredes de color no autorizado. Sin cerámicos bricks. Estantes no autorizados. Falta de zócalos/repisas. Empapelado con logo viejo. Material de comunicación no autorizado en paredes.",
	},
	{
		ID:          "D.9",
		Section:     "D",
		Name:        "Cartelera: formato",
		Check:       CheckComercial,
		Conforme:    "Cartelera digital vigente. TVs de 43 pulgadas, alineados. Legible desde caja. Carta de productos para Take Away exterior. Precios autorizados. Sabores faltantes marcados correctamente.",
		Observacion: "TVs con soporte nuevo pero desalineados o con diferencia de tamaño mínimo.",
		NoConforme:  "Cartelera desactualizada o tradicional no autorizada. Pantallas menores a 43 pulgadas. Sabores faltantes no marcados.",
	},
	{
		ID:          "D.10",
		Section:     "D",
		Name:        "Mostradores: formato",
		Check:       CheckComercial,
		Conforme:    "Modelo nebraska/báltico. Material de comunicación autorizado.",
		Observacion: "Formato Nebraska con logo desactualizado. Iluminación parcial. Material de comunicación no autorizado/desactualizado.",
		NoConforme:  "Modelo distinto al nebraska/báltico. Falta parcial de vidrios. Productos vacíos en mostrador.",
	},
	{
		ID:          "D.11",
		Section:     "D",
		Name:        "Decoración, plantas, jardines y cestos",
		Check:       CheckComercial,
		Conforme:    "Plantas y decoraciones en excelente estado. Decoraciones de fechas especiales completas. Cestos plásticos tapa vaivén y de chapa autorizados. Baños con modelo a pedal.",
		Observacion: "No cumple con uno de los requisitos.",
		NoConforme:  "No cumple con 2+ requisitos. Soporte de vereda escrito a mano o con afiches no autorizados.",
	},
	{
		ID:          "D.12",
		Section:     "D",
		Name:        "Sector de juegos infantiles (formato)",
		Check:       CheckComercial,
		Conforme:    "Juegos en perfecto estado con seguridad adecuada. Piso blando cubriendo toda la superficie. Máximo una máquina por franquicia, en sector infantil definido.",
		Observacion: "Detalles mínimos de estructura. Fallas apenas visibles. En exterior: falta de piso blando/césped.",
		NoConforme:  "Defecto grave de seguridad. Falta de piso de goma interior. 2+ maquinitas. Maquinitas en mal estado. Peloteros en salón. Falta de juegos en sector definido.",
	},
	{
		ID:          "D.13",
		Section:     "D",
		Name:        "Circuito ingreso-compra-consumo-salida: ¿es claro y cómodo?",
		Check:       CheckComercial,
		Conforme:    "AMH enfrentado a la puerta. Autoservicio antes/junto a caja. Cliente visualiza productos antes de llegar a caja. Sector infantil fuera de zona de riesgo. Recorrido claro sin obstáculos.",
		Observacion: "",
		NoConforme:  "",
	},
	{
		ID:          "D.14",
		Section:     "D",
		Name:        "¿La cantidad de puestos de trabajo y cajas es coherente con las ventas?",
		Check:       CheckComercial,
		Conforme:    "Puestos coherentes: ≥30 mil kg = 1 puesto, 30-45 mil kg = 1.5 puestos, ≥45 mil kg = 2 puestos. ≥45 mil kg = 2 cajas.",
		Observacion: "",
		NoConforme:  "",
	},
	{
		ID:          "D.15",
		Section:     "D",
		Name:        "¿La franquicia se encuentra ordenada?",
		Check:       CheckComercial,
		Conforme:    "Mesas con distanciamiento mínimo. Sectores diferenciados e identificables. Servicios complementarios correctamente implementados.",
		Observacion: "",
		NoConforme:  "",
	},
	{
		ID:          "D.16",
		Section:     "D",
		Name:        "En términos generales, ¿el local cumple con los requisitos de la marca?",
		Check:       CheckComercial,
		Conforme:    "100% vinculado a la infraestructura del local (no distribución, formato o limpieza).",
		Observacion: "",
		NoConforme:  "",
	},
	{
		ID:          "E.1",
		Section:     "E",
		Name:        "Disponibilidad y exhibición de impulsivos",
		Check:       CheckComercial,
		Conforme:    "Disponibilidad total de productos envasados incluidos testeo. Exhibidoras con vinilo simil acero inoxidable autorizado. Productos exhibidos verticalmente (vertical) u horizontalmente (horizontal) y de cara al cliente. Exhibidoras al menos 3/4 completas. Vinilos de promociones autorizados y en buen estado.",
		Observacion: "Hasta 2 productos envasados faltantes. Espacios vacíos en exhibidora. Cenefa desactualizada. Desorden no resuelto. 2 productos no de frente. Vinilos no autorizados/deteriorados.",
		NoConforme:  "3+ productos no disponibles. No cumple con 2+ requisitos. Pozos/freezers operativos en salón. Falta de ploteo o deterioro evidente. Vidrios rajados. Exhibidoras no autorizadas. Ocupación inferior a 3/4. Precios en papel o fibrón.",
	},
	{
		ID:          "E.2",
		Section:     "E",
		Name:        "Disponibilidad y exhibición de congelados (Frizzio)",
		Check:       CheckComercial,
		Conforme:    "Exhibidora exclusiva de alimentos congelados con al menos un producto de cada familia. Cenefa Frizzio actualizada. Al menos una pieza de comunicación en vidriera o sector de caja. Vinilo simil acero inoxidable. Exhibidoras al menos 3/4 completas.",
		Observacion: "Falta hasta 2 líneas de productos. Falta de cenefa o desactualizada. Falta de comunicación Frizzio. Falta de precios en vinilo.",
		NoConforme:  "No tiene exhibidora exclusiva. No tiene toda la familia de productos. Productos desordenados. Exhibidora con ocupación inferior a 3/4. Precios en papel o a mano.",
	},
	{
		ID:          "E.3",
		Section:     "E",
		Name:        "¿Posee cámara de frío?",
		Check:       CheckComercial,
		Conforme:    "Sí. Puede estar en la franquicia o por fuera.",
		Observacion: "",
		NoConforme:  "No.",
	},
	{
		ID:          "E.4",
		Section:     "E",
		Name:        "¿La cámara de frío tiene estantes?",
		Check:       CheckComercial,
		Conforme:    "Sí (estantes y palets, piso sanitario).",
		Observacion: "Combina ambos recursos.",
		NoConforme:  "No. Solo tiene pallet o piso sanitario.",
	},
	{
		ID:          "E.5",
		Section:     "E",
		Name:        "¿Cumple con capacidad de frío ideal?",
		Check:       CheckComercial,
		Conforme:    "La capacidad real coincide con el 90% de lo comprado en diciembre 2022.",
		Observacion: "La capacidad real coincide con el 80% de lo comprado en diciembre 2022.",
		NoConforme:  "La capacidad real no llega al 80% de lo comprado en diciembre 2022.",
	},
}
